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

type UserReadStore struct {
	dbx db.DBTX
}

func NewUserReadStore(dbx db.DBTX) *UserReadStore {
	return &UserReadStore{dbx: dbx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = $1
	`
	var view queries.UserView
	err := s.dbx.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email, &view.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// FindSnapshotByEmail includes the password hash and is reserved for the
// login path on the command side.
func (s *UserReadStore) FindSnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1
	`
	var snap shared.UserSnapshot
	err := s.dbx.QueryRow(ctx, query, email).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}
