package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	SessionId uuid.UUID     `json:"session_id" validate:"required"`
	Message   string        `json:"message" validate:"required"`
	Selection *SelectionDTO `json:"selection,omitempty"`
}

// QuickActionRequest triggers one of the fixed assistant actions. Selection
// actions (improve, shorten, expand, fix-grammar) require a selection;
// section actions (add-summary, add-experience, add-skills, add-education)
// start a clarifying-question flow without calling the model.
type QuickActionRequest struct {
	SessionId uuid.UUID     `json:"session_id" validate:"required"`
	Action    string        `json:"action" validate:"required"`
	Selection *SelectionDTO `json:"selection,omitempty"`
}

type ChatMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	SessionId uuid.UUID       `json:"session_id"`
	Sent      *ChatMessageDTO `json:"sent"`
	Reply     *ChatMessageDTO `json:"reply"`

	// DocumentUpdated reports whether the reply carried an insertion span
	// that was applied; Content/Title hold the post-mutation document.
	DocumentUpdated bool   `json:"document_updated"`
	Content         string `json:"content"`
	Title           string `json:"title"`

	Intent         string `json:"intent,omitempty"`
	UsageRemaining int    `json:"usage_remaining"`
}

type GetHistoryResponse struct {
	SessionId uuid.UUID        `json:"session_id"`
	Messages  []ChatMessageDTO `json:"messages"`
}
