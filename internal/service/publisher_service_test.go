package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-be/pkg/events"
)

func TestPublishDocumentChanged(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	// gochannel only delivers to subscribers that exist at publish time.
	messages, err := pubSub.Subscribe(context.Background(), events.TopicDocumentChanged)
	require.NoError(t, err)

	publisher := NewPublisherService(events.TopicDocumentChanged, pubSub)
	sessionId := uuid.New()

	require.NoError(t, publisher.PublishDocumentChanged(sessionId, events.SourceAIInsert))

	select {
	case msg := <-messages:
		var event events.DocumentChangedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, sessionId, event.SessionId)
		assert.Equal(t, events.SourceAIInsert, event.Source)
		assert.False(t, event.OccurredAt.IsZero())
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no message received on the document change topic")
	}
}
