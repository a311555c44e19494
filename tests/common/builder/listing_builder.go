//go:build unit || e2e

package builder

import (
	"time"

	"rvmarket/internal/domain/listing"
	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Location    string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now().UTC()
	return &ListingBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Cozy Camper",
		Description: "Sleeps four, solar panels, full kitchen.",
		Location:    "Boulder, CO",
		PriceCents:  12000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(
		l.ID, l.OwnerID,
		l.Title, l.Description, l.Location, l.PriceCents,
		l.CreatedAt, l.UpdatedAt,
	)
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Title:       l.Title,
		Description: l.Description,
		Location:    l.Location,
		PriceCents:  l.PriceCents,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (l *ListingBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"title":         l.Title,
		"description":   l.Description,
		"location":      l.Location,
		"price_per_day": l.PriceCents,
	}
}
