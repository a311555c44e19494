package shared

import (
	"context"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/domain/listing"
	"rvmarket/internal/domain/message"
	"rvmarket/internal/domain/user"
	"rvmarket/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbx db.DBTX) error) error
	// Reads: command-side snapshot reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Listings() ListingRepository
	Messages() MessageRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type BookingRepository interface {
	// LockListingBookings takes the listing-level exclusive lock over the
	// listing's booking rows. Must be called before the snapshot read that
	// feeds validation; it is what serializes concurrent booking attempts
	// on the same listing.
	LockListingBookings(ctx context.Context, dbx db.DBTX, listingID uuid.UUID) error
	ActiveRangesByListing(ctx context.Context, dbx db.DBTX, listingID uuid.UUID) ([]booking.ActiveRange, error)
	Create(ctx context.Context, dbx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, dbx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ListingRepository interface {
	Create(ctx context.Context, dbx db.DBTX, l *listing.Listing) (uuid.UUID, error)
	Update(ctx context.Context, dbx db.DBTX, l *listing.Listing) error
	Delete(ctx context.Context, dbx db.DBTX, id uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, dbx db.DBTX, m *message.Message) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbx db.DBTX, u *user.User) (uuid.UUID, error)
}
