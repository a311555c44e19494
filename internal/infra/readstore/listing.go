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

type ListingReadStore struct {
	dbx db.DBTX
}

func NewListingReadStore(dbx db.DBTX) *ListingReadStore {
	return &ListingReadStore{dbx: dbx}
}

func (s *ListingReadStore) FindAll(ctx context.Context) ([]*queries.ListingView, error) {
	const query = `
		SELECT id, user_id, title, description, location, price_per_day, created_at, updated_at
		FROM rv_listings
		ORDER BY created_at DESC
	`
	rows, err := s.dbx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	defer rows.Close()

	var views []*queries.ListingView
	for rows.Next() {
		view, err := scanListingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	return views, nil
}

func (s *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	const query = `
		SELECT id, user_id, title, description, location, price_per_day, created_at, updated_at
		FROM rv_listings
		WHERE id = $1
	`
	var view queries.ListingView
	err := s.dbx.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.OwnerID,
		&view.Title,
		&view.Description,
		&view.Location,
		&view.PriceCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return &view, nil
}

// FindSnapshotByID backs command-side reads: enough to authorize and to scope
// the booking overlap check.
func (s *ListingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	const query = `
		SELECT id, user_id, title, price_per_day
		FROM rv_listings
		WHERE id = $1
	`
	var snap shared.ListingSnapshot
	err := s.dbx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.OwnerID, &snap.Title, &snap.PriceCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing snapshot", err)
	}
	return &snap, nil
}

func scanListingView(rows pgx.Rows) (*queries.ListingView, error) {
	var view queries.ListingView
	if err := rows.Scan(
		&view.ID,
		&view.OwnerID,
		&view.Title,
		&view.Description,
		&view.Location,
		&view.PriceCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return nil, infra.WrapRepoErr("failed to scan listing row", err)
	}
	return &view, nil
}
