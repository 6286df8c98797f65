package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/repository/memory"
	"ai-resume-be/internal/websocket"
	"ai-resume-be/pkg/ats"
	"ai-resume-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService recomputes the ATS score whenever a document changes and
// pushes it to the session's score-feed connections. Scoring off the hot
// path keeps document saves and AI insertions from paying for it.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	sessionRepo *memory.SessionRepository
	hub         *websocket.Hub
	log         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sessionRepo *memory.SessionRepository,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		sessionRepo: sessionRepo,
		hub:         hub,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

type scoreFeedPayload struct {
	SessionId string      `json:"session_id"`
	Score     int         `json:"score"`
	Issues    []ats.Issue `json:"issues"`
	Source    string      `json:"source"`
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event events.DocumentChangedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("ConsumerService", "failed to unmarshal document event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid, do not redeliver
		return
	}

	session, found := cs.sessionRepo.Get(event.SessionId.String())
	if !found {
		// Session expired between publish and consume.
		msg.Ack()
		return
	}

	lock := cs.sessionRepo.LockFor(event.SessionId.String())
	lock.RLock()
	content := session.Document.Content
	lock.RUnlock()

	result := ats.Score(content)
	cs.hub.SendScore(event.SessionId, scoreFeedPayload{
		SessionId: event.SessionId.String(),
		Score:     result.Score,
		Issues:    result.Issues,
		Source:    event.Source,
	})

	cs.log.Debug("ConsumerService", "score recomputed", map[string]interface{}{
		"session_id": event.SessionId.String(),
		"score":      result.Score,
		"source":     event.Source,
	})

	msg.Ack()
}
