package response

import (
	"time"

	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}
