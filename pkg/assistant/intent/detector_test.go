package intent

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{
			name:    "review request",
			message: "Can you review my resume?",
			want:    IntentReview,
		},
		{
			name:    "read request",
			message: "Please read through this and tell me what you think",
			want:    IntentReview,
		},
		{
			name:    "rate request",
			message: "Rate my resume out of 10",
			want:    IntentRate,
		},
		{
			name:    "how good question",
			message: "How good is this?",
			want:    IntentRate,
		},
		{
			name:    "ats check",
			message: "Is this ATS friendly?",
			want:    IntentATSCheck,
		},
		{
			name:    "applicant tracking spelled out",
			message: "Will applicant tracking systems parse this?",
			want:    IntentATSCheck,
		},
		{
			name:    "gaps",
			message: "What am I missing?",
			want:    IntentGaps,
		},
		{
			name:    "add request",
			message: "Should I add a projects section?",
			want:    IntentGaps,
		},
		{
			name:    "critique",
			message: "What's wrong with my summary?",
			want:    IntentCritique,
		},
		{
			name:    "fix request",
			message: "Fix the weak parts",
			want:    IntentCritique,
		},
		{
			name:    "no keyword falls back to general",
			message: "Hello there",
			want:    IntentGeneral,
		},
		{
			name:    "empty message",
			message: "",
			want:    IntentGeneral,
		},
		{
			name:    "first matching rule wins over later rules",
			message: "Please review this, I need help",
			want:    IntentReview,
		},
		{
			name:    "rate beats critique",
			message: "Rate it and fix what you find",
			want:    IntentRate,
		},
		{
			name:    "case insensitive",
			message: "REVIEW MY RESUME",
			want:    IntentReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
