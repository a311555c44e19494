package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MessageView struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"rv_listing_id"`
	AuthorID   uuid.UUID `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageQueries interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*MessageView, error)
}

type MessageReadStore interface {
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*MessageView, error)
}

type messageQueriesImpl struct {
	store MessageReadStore
}

func NewMessageQueries(store MessageReadStore) MessageQueries {
	return &messageQueriesImpl{store: store}
}

func (q *messageQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*MessageView, error) {
	return q.store.FindByListing(ctx, listingID)
}
