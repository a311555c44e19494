package readstore

import (
	"context"

	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"
	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageReadStore struct {
	dbx db.DBTX
}

func NewMessageReadStore(dbx db.DBTX) *MessageReadStore {
	return &MessageReadStore{dbx: dbx}
}

func (s *MessageReadStore) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*queries.MessageView, error) {
	const query = `
		SELECT m.id, m.rv_listing_id, m.user_id, u.name, m.content, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.rv_listing_id = $1
		ORDER BY m.created_at ASC
	`
	rows, err := s.dbx.Query(ctx, query, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	var views []*queries.MessageView
	for rows.Next() {
		var view queries.MessageView
		if err := rows.Scan(
			&view.ID,
			&view.ListingID,
			&view.AuthorID,
			&view.AuthorName,
			&view.Content,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	return views, nil
}
