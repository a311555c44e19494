package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"rv_listing_id"`
	ListingTitle string    `json:"listing_title"`
	HirerID      uuid.UUID `json:"user_id"`
	HirerName    string    `json:"hirer_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"rv_listing_id"`
	ListingTitle string    `json:"listing_title"`
	HirerID      uuid.UUID `json:"user_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingQueries interface {
	// GetByIDSystem bypasses actor checks; used for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForActor returns bookings the actor made plus bookings against
	// listings the actor owns.
	ListForActor(ctx context.Context, actorID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindForActor(ctx context.Context, actorID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindForActor(ctx, actorID)
}
