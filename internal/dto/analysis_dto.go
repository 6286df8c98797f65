package dto

import (
	"github.com/google/uuid"

	"ai-resume-be/pkg/ats"
)

type ScoreContentRequest struct {
	Content string `json:"content"`
}

type ScoreResponse struct {
	Score  int         `json:"score"`
	Issues []ats.Issue `json:"issues"`
}

type AnalyzeKeywordsRequest struct {
	SessionId      uuid.UUID `json:"session_id" validate:"required"`
	JobDescription string    `json:"job_description" validate:"required"`
}

type KeywordAnalysisResponse struct {
	// Analyzed is false when the model response carried no parseable JSON
	// object; the remaining fields are then empty and the client keeps its
	// previous analysis, matching the silent no-op contract.
	Analyzed     bool     `json:"analyzed"`
	Keywords     []string `json:"keywords,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	SoftSkills   []string `json:"soft_skills,omitempty"`
	Matched      []string `json:"matched,omitempty"`
	Missing      []string `json:"missing,omitempty"`
	MatchPercent int      `json:"match_percent"`
}
