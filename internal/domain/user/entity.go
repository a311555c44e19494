package user

import (
	"time"

	"github.com/google/uuid"
)

// User can act as an owner (lists vehicles) and as a hirer (books them);
// the two roles are positional, not modeled as separate account types.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
