package listing

import (
	"strings"
	"time"

	"rvmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errs.New("listing title is required")
	ErrEmptyDescription = errs.New("listing description is required")
	ErrEmptyLocation    = errs.New("listing location is required")
	ErrInvalidPrice     = errs.New("price per day must be positive")
)

// Listing is a bookable vehicle owned by a user. The owner has exclusive
// authority to update the listing and to confirm or reject bookings on it.
type Listing struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	location    string
	priceCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewListing(ownerID uuid.UUID, title, description, location string, priceCents int64) (*Listing, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Listing{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		location:    location,
		priceCents:  priceCents,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	title, description, location string,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		location:    location,
		priceCents:  priceCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) Location() string     { return l.location }
func (l *Listing) PriceCents() int64    { return l.priceCents }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }
