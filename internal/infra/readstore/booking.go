package readstore

import (
	"context"

	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"
	"rvmarket/internal/usecase/queries"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	dbx db.DBTX
}

func NewBookingReadStore(dbx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbx: dbx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.rv_listing_id, l.title, b.user_id, u.name,
		       b.start_date, b.end_date, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN rv_listings l ON l.id = b.rv_listing_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1
	`
	var view queries.BookingView
	err := s.dbx.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.ListingID,
		&view.ListingTitle,
		&view.HirerID,
		&view.HirerName,
		&view.StartDate,
		&view.EndDate,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &view, nil
}

func (s *BookingReadStore) FindForActor(ctx context.Context, actorID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.rv_listing_id, l.title, b.user_id,
		       b.start_date, b.end_date, b.status, b.created_at
		FROM bookings b
		JOIN rv_listings l ON l.id = b.rv_listing_id
		WHERE b.user_id = $1 OR l.user_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := s.dbx.Query(ctx, query, actorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings for actor", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID,
			&item.ListingID,
			&item.ListingTitle,
			&item.HirerID,
			&item.StartDate,
			&item.EndDate,
			&item.Status,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings for actor", err)
	}
	return items, nil
}

// FindSnapshotByID backs command-side reads of a single booking.
func (s *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.rv_listing_id, b.user_id, l.user_id, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN rv_listings l ON l.id = b.rv_listing_id
		WHERE b.id = $1
	`
	var snap shared.BookingSnapshot
	err := s.dbx.QueryRow(ctx, query, id).Scan(
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
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}
	return &snap, nil
}
