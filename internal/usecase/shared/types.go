package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type ListingSnapshot struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	PriceCents int64
}

type BookingSnapshot struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	HirerID        uuid.UUID
	ListingOwnerID uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	Status         string
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}
