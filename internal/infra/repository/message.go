package repository

import (
	"context"

	"rvmarket/internal/domain/message"
	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, dbx db.DBTX, m *message.Message) (uuid.UUID, error) {
	const query = `
		INSERT INTO messages (id, rv_listing_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id uuid.UUID
	err := dbx.QueryRow(ctx, query, m.ID(), m.ListingID(), m.AuthorID(), m.Content()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}
	return id, nil
}
