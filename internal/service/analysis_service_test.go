package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/repository/memory"
)

type analysisFixture struct {
	analysis  IAnalysisService
	documents IDocumentService
	sessions  *memory.SessionRepository
	provider  *stubProvider
}

func newAnalysisFixture(t *testing.T) *analysisFixture {
	t.Helper()

	sessions := memory.NewSessionRepository(time.Hour)
	documents := NewDocumentService(sessions, nopPublisher{}, nopLogger{})
	provider := &stubProvider{}

	return &analysisFixture{
		analysis:  NewAnalysisService(sessions, provider, nopLogger{}),
		documents: documents,
		sessions:  sessions,
		provider:  provider,
	}
}

func (f *analysisFixture) newSession(t *testing.T, content string) uuid.UUID {
	t.Helper()

	created, err := f.documents.CreateSession(context.Background())
	require.NoError(t, err)

	session, found := f.sessions.Get(created.Id.String())
	require.True(t, found)
	session.Document.Content = content
	f.sessions.Save(session)
	return created.Id
}

func TestScoreSession(t *testing.T) {
	f := newAnalysisFixture(t)
	id := f.newSession(t, "")

	res, err := f.analysis.ScoreSession(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "Add content to your resume", res.Issues[0].Text)
}

func TestScoreSessionUnknown(t *testing.T) {
	f := newAnalysisFixture(t)

	_, err := f.analysis.ScoreSession(context.Background(), uuid.New())

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestScoreContentWithoutSession(t *testing.T) {
	f := newAnalysisFixture(t)

	res, err := f.analysis.ScoreContent(context.Background(), &dto.ScoreContentRequest{Content: "resume text"})

	require.NoError(t, err)
	assert.Greater(t, res.Score, 0)
}

func TestAnalyzeKeywords(t *testing.T) {
	f := newAnalysisFixture(t)
	id := f.newSession(t, "Shipped Go services on Kubernetes.")
	f.provider.reply = `Here you go:
{"keywords":["Kubernetes","Terraform"],"skills":["Go"],"tools":[],"softSkills":[]}`

	res, err := f.analysis.AnalyzeKeywords(context.Background(), &dto.AnalyzeKeywordsRequest{
		SessionId:      id,
		JobDescription: "Looking for a Go engineer with Kubernetes and Terraform experience.",
	})

	require.NoError(t, err)
	assert.True(t, res.Analyzed)
	assert.Equal(t, []string{"Kubernetes", "Go"}, res.Matched)
	assert.Equal(t, []string{"Terraform"}, res.Missing)
	assert.Equal(t, 67, res.MatchPercent)
}

func TestAnalyzeKeywordsUnparseableResponse(t *testing.T) {
	f := newAnalysisFixture(t)
	id := f.newSession(t, "doc")
	f.provider.reply = "Sorry, I cannot help with that."

	res, err := f.analysis.AnalyzeKeywords(context.Background(), &dto.AnalyzeKeywordsRequest{
		SessionId:      id,
		JobDescription: "any",
	})

	require.NoError(t, err, "garbage model output is a silent no-op, not an error")
	assert.False(t, res.Analyzed)
	assert.Empty(t, res.Matched)
}

func TestAnalyzeKeywordsProviderFailure(t *testing.T) {
	f := newAnalysisFixture(t)
	id := f.newSession(t, "doc")
	f.provider.err = errors.New("timeout")

	res, err := f.analysis.AnalyzeKeywords(context.Background(), &dto.AnalyzeKeywordsRequest{
		SessionId:      id,
		JobDescription: "any",
	})

	require.NoError(t, err)
	assert.False(t, res.Analyzed)
}
