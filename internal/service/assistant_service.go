package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-resume-be/internal/constant"
	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/entity"
	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/repository/memory"
	"ai-resume-be/pkg/assistant/intent"
	"ai-resume-be/pkg/assistant/parser"
	"ai-resume-be/pkg/assistant/prompt"
	"ai-resume-be/pkg/events"
	"ai-resume-be/pkg/llm"
)

type IAssistantService interface {
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	QuickAction(ctx context.Context, req *dto.QuickActionRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error)
}

type assistantService struct {
	sessionRepo *memory.SessionRepository
	usage       IUsageService
	documents   IDocumentService
	provider    llm.LLMProvider
	publisher   IPublisherService
	log         logger.ILogger
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	usage IUsageService,
	documents IDocumentService,
	provider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo: sessionRepo,
		usage:       usage,
		documents:   documents,
		provider:    provider,
		publisher:   publisher,
		log:         log,
	}
}

// SendChat runs one full user->assistant exchange. The order below is load
// bearing: the quota gate runs before anything else, the selection snapshot
// is taken before the provider call suspends, and usage is only recorded
// after a successful exchange. The session's write lock is dropped for the
// provider call itself, so direct document edits keep working while the
// assistant is thinking; the busy flag keeps a second send out.
func (s *assistantService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, acquired := s.sessionRepo.AcquireBusy(req.SessionId.String())
	if !acquired {
		if _, found := s.sessionRepo.Get(req.SessionId.String()); !found {
			return nil, serverutils.ErrNotFound("session not found")
		}
		return nil, serverutils.ErrConflict("assistant is already responding for this session")
	}
	defer s.sessionRepo.ReleaseBusy(req.SessionId.String())

	lock := s.sessionRepo.LockFor(req.SessionId.String())

	// Quota gate: the refusal lives in the conversation, not in an error.
	if !s.usage.CanUse(session.Id) {
		lock.Lock()
		defer lock.Unlock()
		sent := s.appendMessage(session, constant.ChatMessageRoleUser, req.Message)
		reply := s.appendMessage(session, constant.ChatMessageRoleAssistant, constant.QuotaExhaustedMessage)
		s.sessionRepo.Save(session)
		return s.buildResponse(session, &sent, reply, false, ""), nil
	}

	lock.Lock()

	// Snapshot the selection against the document as it is right now. The
	// document can change while the provider call is in flight; the applied
	// insertion must target the range the user actually selected.
	var selection *entity.Selection
	if req.Selection != nil {
		selection = &entity.Selection{
			Text:  req.Selection.Text,
			Start: req.Selection.Start,
			End:   req.Selection.End,
		}
		if err := selection.Validate(session.Document); err != nil {
			lock.Unlock()
			return nil, serverutils.ErrBadRequest(err.Error())
		}
	}

	// A pending section flow augments what the model sees, never what the
	// conversation shows. The flow is consumed here even if the provider
	// call later fails.
	outgoingText := req.Message
	if session.AwaitingDetails != "" {
		if flow, ok := constant.SectionFlows[session.AwaitingDetails]; ok {
			outgoingText = req.Message + "\n\n" + flow.GeneratePrompt
		}
		session.AwaitingDetails = ""
	}

	detected := intent.Detect(req.Message)

	builder := prompt.NewBuilder(constant.ResumeRulesV1).
		WithDocument(session.Document.Content).
		WithIntent(detected)
	if selection != nil {
		builder = builder.WithSelection(selection.Text)
	}
	systemPrompt := builder.Build()

	history := make([]llm.Message, 0, len(session.Messages)+2)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: systemPrompt})
	for _, m := range session.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: outgoingText})

	sent := s.appendMessage(session, constant.ChatMessageRoleUser, req.Message)
	s.sessionRepo.Save(session)

	lock.Unlock()

	raw, err := s.provider.Chat(ctx, history)

	lock.Lock()
	defer lock.Unlock()

	if err != nil {
		s.log.Error("AssistantService", "provider call failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		reply := s.appendMessage(session, constant.ChatMessageRoleAssistant, constant.ConnectivityErrorMessage)
		s.sessionRepo.Save(session)
		return s.buildResponse(session, &sent, reply, false, string(detected)), nil
	}

	parsed := parser.Parse(raw)

	documentUpdated := false
	if parsed.HasInsert {
		s.documents.ApplyInsert(session, parsed.InsertContent, selection)
		documentUpdated = true
		if err := s.publisher.PublishDocumentChanged(session.Id, events.SourceAIInsert); err != nil {
			s.log.Error("AssistantService", "failed to publish document change", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	reply := s.appendMessage(session, constant.ChatMessageRoleAssistant, parsed.CleanedMessage)
	s.sessionRepo.Save(session)

	s.usage.RecordUse(session.Id)

	return s.buildResponse(session, &sent, reply, documentUpdated, string(detected)), nil
}

// QuickAction dispatches one of the fixed toolbar actions. Selection actions
// are a normal send with a canned prompt; section actions only ask the
// clarifying question and arm the flow, without touching the model or quota.
func (s *assistantService) QuickAction(ctx context.Context, req *dto.QuickActionRequest) (*dto.SendChatResponse, error) {
	if actionPrompt, ok := constant.SelectionActionPrompts[req.Action]; ok {
		if req.Selection == nil || req.Selection.Text == "" {
			return nil, serverutils.ErrBadRequest("action '" + req.Action + "' requires a selection")
		}
		return s.SendChat(ctx, &dto.SendChatRequest{
			SessionId: req.SessionId,
			Message:   actionPrompt,
			Selection: req.Selection,
		})
	}

	if flow, ok := constant.SectionFlows[req.Action]; ok {
		session, acquired := s.sessionRepo.AcquireBusy(req.SessionId.String())
		if !acquired {
			if _, found := s.sessionRepo.Get(req.SessionId.String()); !found {
				return nil, serverutils.ErrNotFound("session not found")
			}
			return nil, serverutils.ErrConflict("assistant is already responding for this session")
		}
		defer s.sessionRepo.ReleaseBusy(req.SessionId.String())

		lock := s.sessionRepo.LockFor(req.SessionId.String())
		lock.Lock()
		defer lock.Unlock()

		// Arming a new flow replaces any previously pending one.
		session.AwaitingDetails = req.Action
		reply := s.appendMessage(session, constant.ChatMessageRoleAssistant, flow.Question)
		s.sessionRepo.Save(session)

		return s.buildResponse(session, nil, reply, false, ""), nil
	}

	return nil, serverutils.ErrBadRequest("unknown action '" + req.Action + "'")
}

func (s *assistantService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error) {
	session, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, serverutils.ErrNotFound("session not found")
	}

	lock := s.sessionRepo.LockFor(sessionId.String())
	lock.RLock()
	defer lock.RUnlock()

	messages := make([]dto.ChatMessageDTO, 0, len(session.Messages))
	for _, m := range session.Messages {
		messages = append(messages, toChatMessageDTO(m))
	}

	return &dto.GetHistoryResponse{
		SessionId: session.Id,
		Messages:  messages,
	}, nil
}

func (s *assistantService) appendMessage(session *entity.EditorSession, role, content string) entity.ChatMessage {
	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	session.Messages = append(session.Messages, msg)
	return msg
}

func (s *assistantService) buildResponse(session *entity.EditorSession, sent *entity.ChatMessage, reply entity.ChatMessage, documentUpdated bool, detected string) *dto.SendChatResponse {
	res := &dto.SendChatResponse{
		SessionId:       session.Id,
		Reply:           ptr(toChatMessageDTO(reply)),
		DocumentUpdated: documentUpdated,
		Content:         session.Document.Content,
		Title:           session.Document.Title,
		Intent:          detected,
		UsageRemaining:  s.usage.Remaining(session.Id),
	}
	if sent != nil {
		res.Sent = ptr(toChatMessageDTO(*sent))
	}
	return res
}

func toChatMessageDTO(m entity.ChatMessage) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ptr[T any](v T) *T {
	return &v
}
