package message

import (
	"strings"
	"time"

	"rvmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyContent = errs.New("message content is required")

// Message is a note left on a listing by an authenticated user.
type Message struct {
	id        uuid.UUID
	listingID uuid.UUID
	authorID  uuid.UUID
	content   string
	createdAt time.Time
}

func NewMessage(listingID, authorID uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Message{
		id:        uuid.New(),
		listingID: listingID,
		authorID:  authorID,
		content:   content,
	}, nil
}

func ReconstructMessage(id, listingID, authorID uuid.UUID, content string, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		listingID: listingID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) ListingID() uuid.UUID { return m.listingID }
func (m *Message) AuthorID() uuid.UUID  { return m.authorID }
func (m *Message) Content() string      { return m.content }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
