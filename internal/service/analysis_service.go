package service

import (
	"context"

	"github.com/google/uuid"

	"ai-resume-be/internal/constant"
	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/repository/memory"
	"ai-resume-be/pkg/ats"
	"ai-resume-be/pkg/keywords"
	"ai-resume-be/pkg/llm"
)

type IAnalysisService interface {
	ScoreSession(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error)
	ScoreContent(ctx context.Context, req *dto.ScoreContentRequest) (*dto.ScoreResponse, error)
	AnalyzeKeywords(ctx context.Context, req *dto.AnalyzeKeywordsRequest) (*dto.KeywordAnalysisResponse, error)
}

type analysisService struct {
	sessionRepo *memory.SessionRepository
	provider    llm.LLMProvider
	log         logger.ILogger
}

func NewAnalysisService(sessionRepo *memory.SessionRepository, provider llm.LLMProvider, log logger.ILogger) IAnalysisService {
	return &analysisService{
		sessionRepo: sessionRepo,
		provider:    provider,
		log:         log,
	}
}

func (s *analysisService) ScoreSession(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error) {
	session, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, serverutils.ErrNotFound("session not found")
	}

	result := ats.Score(session.Document.Content)
	return &dto.ScoreResponse{Score: result.Score, Issues: result.Issues}, nil
}

func (s *analysisService) ScoreContent(ctx context.Context, req *dto.ScoreContentRequest) (*dto.ScoreResponse, error) {
	result := ats.Score(req.Content)
	return &dto.ScoreResponse{Score: result.Score, Issues: result.Issues}, nil
}

// AnalyzeKeywords extracts keywords from a job description via the model and
// diffs them against the session's document. An unparseable model response is
// not an error: the response just reports Analyzed=false and the client keeps
// whatever analysis it already had. Keyword analysis is unmetered.
func (s *analysisService) AnalyzeKeywords(ctx context.Context, req *dto.AnalyzeKeywordsRequest) (*dto.KeywordAnalysisResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId.String())
	if !found {
		return nil, serverutils.ErrNotFound("session not found")
	}

	raw, err := s.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.KeywordExtractionPromptV1},
		{Role: constant.ChatMessageRoleUser, Content: "Extract keywords from this job description:\n\n" + req.JobDescription},
	})
	if err != nil {
		s.log.Error("AnalysisService", "keyword extraction call failed", map[string]interface{}{
			"session_id": req.SessionId.String(),
			"error":      err.Error(),
		})
		return &dto.KeywordAnalysisResponse{Analyzed: false}, nil
	}

	extraction, ok := keywords.ParseExtraction(raw)
	if !ok {
		s.log.Warn("AnalysisService", "keyword extraction returned no parseable JSON", map[string]interface{}{
			"session_id": req.SessionId.String(),
		})
		return &dto.KeywordAnalysisResponse{Analyzed: false}, nil
	}

	analysis := keywords.Match(extraction, session.Document.Content)

	return &dto.KeywordAnalysisResponse{
		Analyzed:     true,
		Keywords:     analysis.Keywords,
		Skills:       analysis.Skills,
		Tools:        analysis.Tools,
		SoftSkills:   analysis.SoftSkills,
		Matched:      analysis.Matched,
		Missing:      analysis.Missing,
		MatchPercent: analysis.MatchPercent,
	}, nil
}
