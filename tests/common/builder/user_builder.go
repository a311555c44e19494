//go:build unit || e2e

package builder

import (
	"sync"
	"time"

	"rvmarket/internal/pkg/password"
	"rvmarket/internal/usecase/queries"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	fixtureHashOnce sync.Once
	fixtureHash     string
)

// hashing is slow, so the shared fixture hash is computed once per process
func passwordHashFixture() string {
	fixtureHashOnce.Do(func() {
		hash, err := password.HashPassword("password123")
		if err != nil {
			panic(err)
		}
		fixtureHash = hash
	})
	return fixtureHash
}

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "user@example.com",
		Password:     "password123",
		PasswordHash: passwordHashFixture(),
		CreatedAt:    time.Now().UTC(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

func (u *UserBuilder) BuildRegisterBody() map[string]any {
	return map[string]any{
		"name":     u.Name,
		"email":    u.Email,
		"password": u.Password,
	}
}
