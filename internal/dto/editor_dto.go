package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
}

type GetSessionResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateDocumentRequest struct {
	Id      uuid.UUID `json:"-"`
	Content string    `json:"content"`
	Title   string    `json:"title" validate:"max=200"`
}

type UpdateDocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SelectionDTO mirrors the editor's captured range. Offsets are byte offsets
// into the document content as the client last saw it.
type SelectionDTO struct {
	Text  string `json:"text" validate:"required"`
	Start int    `json:"start" validate:"min=0"`
	End   int    `json:"end" validate:"min=0"`
}
