// Package ats estimates how well resume text will survive automated
// applicant-tracking filters. The score is a heuristic: a fixed set of
// independent checks, each worth a fixed penalty, evaluated against the full
// text on every call. No state is kept between calls.
package ats

import (
	"regexp"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Issue is one failed check, phrased as the fix the user should make.
type Issue struct {
	Type     string   `json:"type"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
}

// Result carries the clamped score and the issues in check-evaluation order.
type Result struct {
	Score  int     `json:"score"`
	Issues []Issue `json:"issues"`
}

var (
	summaryPattern    = regexp.MustCompile(`(?i)summary|profile|objective`)
	experiencePattern = regexp.MustCompile(`(?i)experience|work history|employment`)
	skillsPattern     = regexp.MustCompile(`(?i)skills|technical skills|core competencies`)
	educationPattern  = regexp.MustCompile(`(?i)education|academic`)

	metricsPattern    = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\+?\s*(years|months|clients|customers|users|projects|team|people|members)`)
	actionVerbPattern = regexp.MustCompile(`(?i)\b(led|managed|developed|created|built|increased|decreased|improved|designed|implemented|launched|achieved|delivered|generated|reduced|streamlined|coordinated|established|negotiated|trained|mentored)\b`)

	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Box-drawing glyphs that tend to garble ATS parsers.
	specialCharPattern = regexp.MustCompile(`[│┃┆┇┊┋╎╏║▎▏]`)
)

// Score evaluates resume text against the rubric. Empty or whitespace-only
// input short-circuits to zero with a single issue.
func Score(content string) Result {
	if strings.TrimSpace(content) == "" {
		return Result{
			Score:  0,
			Issues: []Issue{{Type: "empty", Text: "Add content to your resume", Priority: PriorityHigh}},
		}
	}

	score := 100
	issues := []Issue{}
	wordCount := len(strings.Fields(content))

	if !summaryPattern.MatchString(content) {
		score -= 10
		issues = append(issues, Issue{Type: "section", Text: "Add a professional summary", Priority: PriorityHigh})
	}
	if !experiencePattern.MatchString(content) {
		score -= 20
		issues = append(issues, Issue{Type: "section", Text: "Add work experience section", Priority: PriorityHigh})
	}
	if !skillsPattern.MatchString(content) {
		score -= 10
		issues = append(issues, Issue{Type: "section", Text: "Add a skills section", Priority: PriorityMedium})
	}
	if !educationPattern.MatchString(content) {
		score -= 5
		issues = append(issues, Issue{Type: "section", Text: "Add education section", Priority: PriorityLow})
	}

	if wordCount < 150 {
		score -= 15
		issues = append(issues, Issue{Type: "length", Text: "Resume is too short (aim for 400-700 words)", Priority: PriorityHigh})
	} else if wordCount < 300 {
		score -= 5
		issues = append(issues, Issue{Type: "length", Text: "Consider adding more detail", Priority: PriorityMedium})
	} else if wordCount > 1000 {
		score -= 10
		issues = append(issues, Issue{Type: "length", Text: "Resume may be too long (aim for 1-2 pages)", Priority: PriorityMedium})
	}

	if !metricsPattern.MatchString(content) {
		score -= 15
		issues = append(issues, Issue{Type: "content", Text: "Add quantified achievements (%, $, numbers)", Priority: PriorityHigh})
	}

	if !actionVerbPattern.MatchString(content) {
		score -= 10
		issues = append(issues, Issue{Type: "content", Text: "Use strong action verbs (Led, Built, Increased, etc.)", Priority: PriorityMedium})
	}

	if !emailPattern.MatchString(content) {
		score -= 5
		issues = append(issues, Issue{Type: "contact", Text: "Add email address", Priority: PriorityHigh})
	}
	if !phonePattern.MatchString(content) {
		score -= 5
		issues = append(issues, Issue{Type: "contact", Text: "Add phone number", Priority: PriorityMedium})
	}

	if specialCharPattern.MatchString(content) {
		score -= 10
		issues = append(issues, Issue{Type: "format", Text: "Remove special characters (may confuse ATS)", Priority: PriorityHigh})
	}

	return Result{Score: clamp(score), Issues: issues}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
