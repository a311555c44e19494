package response

import (
	"time"

	"rvmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"rv_listing_id"`
	AuthorID   uuid.UUID `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	return &MessageResponse{
		ID:         v.ID,
		ListingID:  v.ListingID,
		AuthorID:   v.AuthorID,
		AuthorName: v.AuthorName,
		Content:    v.Content,
		CreatedAt:  v.CreatedAt,
	}
}

func FromMessageViews(views []*queries.MessageView) []*MessageResponse {
	out := make([]*MessageResponse, len(views))
	for i, v := range views {
		out[i] = FromMessageView(v)
	}
	return out
}
