package repository

import (
	"context"

	"rvmarket/internal/domain/listing"
	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, dbx db.DBTX, l *listing.Listing) (uuid.UUID, error) {
	const query = `
		INSERT INTO rv_listings (id, user_id, title, description, location, price_per_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id uuid.UUID
	err := dbx.QueryRow(ctx, query,
		l.ID(),
		l.OwnerID(),
		l.Title(),
		l.Description(),
		l.Location(),
		l.PriceCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

func (r *ListingRepository) Update(ctx context.Context, dbx db.DBTX, l *listing.Listing) error {
	const query = `
		UPDATE rv_listings
		SET title = $2, description = $3, location = $4, price_per_day = $5, updated_at = now()
		WHERE id = $1
	`
	tag, err := dbx.Exec(ctx, query, l.ID(), l.Title(), l.Description(), l.Location(), l.PriceCents())
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, dbx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM rv_listings WHERE id = $1`
	tag, err := dbx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
