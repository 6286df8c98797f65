package ats

import (
	"strings"
	"testing"
)

// completeResume trips none of the checks except the short-length one, which
// keeps the expected score deterministic.
const completeResume = `Jane Doe
jane@example.com | 555-123-4567

SUMMARY
Software engineer focused on backend systems.

EXPERIENCE
Led a platform team and increased throughput by 40%.

SKILLS
Go, PostgreSQL, Kubernetes

EDUCATION
B.S. Computer Science`

func TestScoreEmptyContent(t *testing.T) {
	for _, content := range []string{"", "   \n\t  "} {
		result := Score(content)

		if result.Score != 0 {
			t.Errorf("Score(%q) = %d, want 0", content, result.Score)
		}
		if len(result.Issues) != 1 {
			t.Fatalf("Issues = %d, want 1", len(result.Issues))
		}
		if result.Issues[0].Text != "Add content to your resume" {
			t.Errorf("issue text = %q", result.Issues[0].Text)
		}
		if result.Issues[0].Priority != PriorityHigh {
			t.Errorf("issue priority = %q, want high", result.Issues[0].Priority)
		}
	}
}

func TestScoreCompleteResume(t *testing.T) {
	result := Score(completeResume)

	// Only the under-150-words check fires.
	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("Issues = %v, want only the length issue", result.Issues)
	}
	if result.Issues[0].Type != "length" {
		t.Errorf("issue type = %q, want length", result.Issues[0].Type)
	}
}

func TestScoreBareContent(t *testing.T) {
	result := Score("aaa bbb ccc")

	// Every check except the special-character one fires: 4 sections, short
	// length, metrics, action verbs, email, phone.
	if result.Score != 5 {
		t.Errorf("Score = %d, want 5", result.Score)
	}
	if len(result.Issues) != 9 {
		t.Errorf("Issues = %d, want 9", len(result.Issues))
	}
}

func TestScoreClampsAtZero(t *testing.T) {
	result := Score("│")

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0 after clamping", result.Score)
	}
}

func TestScoreSpecialCharacters(t *testing.T) {
	result := Score(completeResume + "\n│ Table layout │")

	if !hasIssueText(result, "Remove special characters (may confuse ATS)") {
		t.Errorf("expected special character issue, got %v", result.Issues)
	}
	if result.Score != 75 {
		t.Errorf("Score = %d, want 75", result.Score)
	}
}

func TestScoreLengthBands(t *testing.T) {
	pad := func(words int) string {
		return completeResume + " " + strings.Repeat("go ", words)
	}

	tests := []struct {
		name     string
		content  string
		wantText string
	}{
		{"short", completeResume, "Resume is too short (aim for 400-700 words)"},
		{"mid band", pad(200), "Consider adding more detail"},
		{"too long", pad(1200), "Resume may be too long (aim for 1-2 pages)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.content)
			if !hasIssueText(result, tt.wantText) {
				t.Errorf("expected issue %q, got %v", tt.wantText, result.Issues)
			}
		})
	}

	if result := Score(pad(500)); hasIssueType(result, "length") {
		t.Errorf("in-band length should raise no length issue, got %v", result.Issues)
	}
}

func TestScoreIssueOrderIsStable(t *testing.T) {
	first := Score("aaa bbb ccc")
	second := Score("aaa bbb ccc")

	if len(first.Issues) != len(second.Issues) {
		t.Fatalf("issue count changed between identical calls")
	}
	for i := range first.Issues {
		if first.Issues[i] != second.Issues[i] {
			t.Errorf("issue %d differs: %v vs %v", i, first.Issues[i], second.Issues[i])
		}
	}
}

func TestScoreBounds(t *testing.T) {
	for _, content := range []string{"", "x", completeResume, completeResume + "│"} {
		result := Score(content)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Score(%q) = %d, out of [0,100]", content, result.Score)
		}
	}
}

func hasIssueText(r Result, text string) bool {
	for _, issue := range r.Issues {
		if issue.Text == text {
			return true
		}
	}
	return false
}

func hasIssueType(r Result, issueType string) bool {
	for _, issue := range r.Issues {
		if issue.Type == issueType {
			return true
		}
	}
	return false
}
