package response

import (
	"time"

	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	PricePerDay int64     `json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		Location:    v.Location,
		PricePerDay: v.PriceCents,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	out := make([]*ListingResponse, len(views))
	for i, v := range views {
		out[i] = FromListingView(v)
	}
	return out
}
