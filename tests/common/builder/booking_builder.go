//go:build unit || e2e

package builder

import (
	"time"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	ListingID    uuid.UUID
	ListingTitle string
	HirerID      uuid.UUID
	HirerName    string
	StartDate    time.Time
	EndDate      time.Time
	Status       booking.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	start := booking.TruncateToDate(now.AddDate(0, 0, 5))
	return &BookingBuilder{
		ID:           uuid.New(),
		ListingID:    uuid.New(),
		ListingTitle: "Cozy Camper",
		HirerID:      uuid.New(),
		HirerName:    "Test Hirer",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 2),
		Status:       booking.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ListingID, b.HirerID,
		booking.NewDateRange(b.StartDate, b.EndDate),
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		ListingID:    b.ListingID,
		ListingTitle: b.ListingTitle,
		HirerID:      b.HirerID,
		HirerName:    b.HirerName,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"start_date": b.StartDate.Format("2006-01-02"),
		"end_date":   b.EndDate.Format("2006-01-02"),
	}
}
