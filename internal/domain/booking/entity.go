package booking

import (
	"time"

	"rvmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

// Booking is a reservation request for a listing over a date range. It is
// created pending and moved to confirmed or rejected by the listing owner.
type Booking struct {
	id        uuid.UUID
	listingID uuid.UUID
	hirerID   uuid.UUID
	dates     DateRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(listingID, hirerID uuid.UUID, dates DateRange) *Booking {
	return &Booking{
		id:        uuid.New(),
		listingID: listingID,
		hirerID:   hirerID,
		dates:     dates,
		status:    StatusPending,
	}
}

func ReconstructBooking(
	id, listingID, hirerID uuid.UUID,
	dates DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		listingID: listingID,
		hirerID:   hirerID,
		dates:     dates,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the booking through its lifecycle, rejecting any move not
// allowed by the state machine (pending -> confirmed | rejected).
func (b *Booking) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ListingID() uuid.UUID { return b.listingID }
func (b *Booking) HirerID() uuid.UUID   { return b.hirerID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
