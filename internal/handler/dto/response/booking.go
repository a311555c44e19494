package response

import (
	"time"

	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"rv_listing_id"`
	ListingTitle string    `json:"listing_title"`
	UserID       uuid.UUID `json:"user_id"`
	HirerName    string    `json:"hirer_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"rv_listing_id"`
	ListingTitle string    `json:"listing_title"`
	UserID       uuid.UUID `json:"user_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		ListingID:    v.ListingID,
		ListingTitle: v.ListingTitle,
		UserID:       v.HirerID,
		HirerName:    v.HirerName,
		StartDate:    v.StartDate.Format(dateLayout),
		EndDate:      v.EndDate.Format(dateLayout),
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListItemResponse {
	return &BookingListItemResponse{
		ID:           v.ID,
		ListingID:    v.ListingID,
		ListingTitle: v.ListingTitle,
		UserID:       v.HirerID,
		StartDate:    v.StartDate.Format(dateLayout),
		EndDate:      v.EndDate.Format(dateLayout),
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
}
