package events

import (
	"time"

	"github.com/google/uuid"
)

const TopicDocumentChanged = "DOCUMENT_CHANGED"

const (
	SourceUserEdit = "user_edit"
	SourceAIInsert = "ai_insert"
)

// DocumentChangedEvent is published on every document mutation, whether from
// direct typing or an applied AI insertion. Consumers recompute derived state
// (currently the ATS score feed).
type DocumentChangedEvent struct {
	SessionId  uuid.UUID `json:"session_id"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}
