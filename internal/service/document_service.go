package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-resume-be/internal/constant"
	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/entity"
	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/repository/memory"
	"ai-resume-be/pkg/events"
)

type IDocumentService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetSessionResponse, error)
	UpdateDocument(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error)
	ExportText(ctx context.Context, sessionId uuid.UUID) (title string, content string, err error)

	// ApplyInsert splices generated content into the session's document:
	// into the snapshot range when a selection was captured, appended
	// otherwise. The caller holds the session's write lock and saves it
	// afterwards.
	ApplyInsert(session *entity.EditorSession, content string, selection *entity.Selection)
}

type documentService struct {
	sessionRepo *memory.SessionRepository
	publisher   IPublisherService
	log         logger.ILogger
}

func NewDocumentService(sessionRepo *memory.SessionRepository, publisher IPublisherService, log logger.ILogger) IDocumentService {
	return &documentService{
		sessionRepo: sessionRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *documentService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	now := time.Now()
	session := &entity.EditorSession{
		Id: uuid.New(),
		Messages: []entity.ChatMessage{
			{
				Id:        uuid.New(),
				Role:      constant.ChatMessageRoleAssistant,
				Content:   constant.AssistantGreeting,
				CreatedAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessionRepo.Save(session)

	s.log.Info("DocumentService", "editor session created", map[string]interface{}{
		"session_id": session.Id.String(),
	})

	return &dto.CreateSessionResponse{
		Id:       session.Id,
		Greeting: constant.AssistantGreeting,
	}, nil
}

func (s *documentService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetSessionResponse, error) {
	session, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, serverutils.ErrNotFound("session not found")
	}

	lock := s.sessionRepo.LockFor(sessionId.String())
	lock.RLock()
	defer lock.RUnlock()

	return &dto.GetSessionResponse{
		Id:           session.Id,
		Title:        session.Document.Title,
		Content:      session.Document.Content,
		MessageCount: len(session.Messages),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error) {
	session, found := s.sessionRepo.Get(req.Id.String())
	if !found {
		return nil, serverutils.ErrNotFound("session not found")
	}

	lock := s.sessionRepo.LockFor(req.Id.String())
	lock.Lock()
	session.Document.Content = req.Content
	session.Document.Title = req.Title
	session.UpdatedAt = time.Now()
	s.sessionRepo.Save(session)
	res := &dto.UpdateDocumentResponse{
		Id:        session.Id,
		Title:     session.Document.Title,
		Content:   session.Document.Content,
		UpdatedAt: session.UpdatedAt,
	}
	lock.Unlock()

	if err := s.publisher.PublishDocumentChanged(session.Id, events.SourceUserEdit); err != nil {
		s.log.Error("DocumentService", "failed to publish document change", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	return res, nil
}

func (s *documentService) ExportText(ctx context.Context, sessionId uuid.UUID) (string, string, error) {
	session, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return "", "", serverutils.ErrNotFound("session not found")
	}

	lock := s.sessionRepo.LockFor(sessionId.String())
	lock.RLock()
	defer lock.RUnlock()

	title := session.Document.Title
	if title == "" {
		title = "resume"
	}
	return title, session.Document.Content, nil
}

func (s *documentService) ApplyInsert(session *entity.EditorSession, content string, selection *entity.Selection) {
	doc := session.Document.Content

	if selection != nil {
		// The snapshot was validated against the document as it stood when
		// the send started, but the user can keep typing while the provider
		// call is in flight. Clamp the range to the document as it is now so
		// a shrunk document degrades to an in-bounds splice instead of
		// panicking.
		start, end := selection.Start, selection.End
		if start > len(doc) {
			start = len(doc)
		}
		if end > len(doc) {
			end = len(doc)
		}
		if start > end {
			start = end
		}
		session.Document.Content = doc[:start] + content + doc[end:]
	} else if strings.TrimSpace(doc) == "" {
		// No separator in front of the first real content.
		session.Document.Content = content
	} else {
		session.Document.Content = doc + "\n\n" + content
	}
	session.UpdatedAt = time.Now()
}
