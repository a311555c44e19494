package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ListingView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	PriceCents  int64     `json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListingQueries interface {
	List(ctx context.Context) ([]*ListingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingReadStore interface {
	FindAll(ctx context.Context) ([]*ListingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) List(ctx context.Context) ([]*ListingView, error) {
	return q.store.FindAll(ctx)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	return q.store.FindByID(ctx, id)
}
