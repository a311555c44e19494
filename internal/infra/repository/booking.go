package repository

import (
	"context"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// LockListingBookings acquires row locks on every booking row of the listing.
// Together with the insert this serializes concurrent booking attempts per
// listing: a second transaction blocks here until the first commits, then
// reads a snapshot that already contains the first one's booking.
func (r *BookingRepository) LockListingBookings(ctx context.Context, dbx db.DBTX, listingID uuid.UUID) error {
	const query = `
		SELECT id FROM bookings
		WHERE rv_listing_id = $1
		FOR UPDATE
	`
	rows, err := dbx.Query(ctx, query, listingID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock listing bookings", err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to lock listing bookings", err)
	}
	return nil
}

func (r *BookingRepository) ActiveRangesByListing(ctx context.Context, dbx db.DBTX, listingID uuid.UUID) ([]booking.ActiveRange, error) {
	const query = `
		SELECT start_date, end_date FROM bookings
		WHERE rv_listing_id = $1 AND status IN ('pending', 'confirmed')
	`
	rows, err := dbx.Query(ctx, query, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read active booking ranges", err)
	}
	defer rows.Close()

	var ranges []booking.ActiveRange
	for rows.Next() {
		var ar booking.ActiveRange
		if err := rows.Scan(&ar.Start, &ar.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking range", err)
		}
		ranges = append(ranges, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active booking ranges", err)
	}
	return ranges, nil
}

func (r *BookingRepository) Create(ctx context.Context, dbx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, rv_listing_id, user_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id uuid.UUID
	err := dbx.QueryRow(ctx, query,
		b.ID(),
		b.ListingID(),
		b.HirerID(),
		b.Dates().Start(),
		b.Dates().End(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.rv_listing_id, b.user_id, l.user_id, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN rv_listings l ON l.id = b.rv_listing_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`
	var snap shared.BookingSnapshot
	err := dbx.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.ListingID,
		&snap.HirerID,
		&snap.ListingOwnerID,
		&snap.StartDate,
		&snap.EndDate,
		&snap.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}
	return &snap, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := dbx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
