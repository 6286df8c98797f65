package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is the resume being edited. Session-scoped; never persisted.
type Document struct {
	Content string
	Title   string
}

// Selection is a captured range of the document. Valid only at the moment of
// capture: any later document change makes the offsets stale, which is why
// the assistant service snapshots it before suspending.
type Selection struct {
	Text  string
	Start int
	End   int
}

// Validate checks the selection against the document it was captured from.
func (s *Selection) Validate(doc Document) error {
	if s.Start < 0 || s.Start > s.End || s.End > len(doc.Content) {
		return fmt.Errorf("selection range [%d:%d] out of bounds for document of length %d", s.Start, s.End, len(doc.Content))
	}
	if doc.Content[s.Start:s.End] != s.Text {
		return fmt.Errorf("selection text does not match document range [%d:%d]", s.Start, s.End)
	}
	return nil
}

type ChatMessage struct {
	Id        uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}

// EditorSession holds everything one editing session owns: the document, the
// conversation, and the pending section-flow tag. All mutation goes through
// the services; the session repository only stores and retrieves it.
type EditorSession struct {
	Id       uuid.UUID
	Document Document
	Messages []ChatMessage

	// AwaitingDetails names the section-template flow whose clarifying
	// question was just asked, or "" when no flow is pending. At most one
	// flow is pending at a time.
	AwaitingDetails string

	// Busy is set while a provider call is in flight so a second concurrent
	// send on the same session is rejected instead of interleaved.
	Busy bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
