package parser

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantContent string
		wantInsert  bool
		wantCleaned string
	}{
		{
			name:        "no markers passes through unchanged",
			text:        "Your summary looks solid. Consider adding metrics.",
			wantContent: "",
			wantInsert:  false,
			wantCleaned: "Your summary looks solid. Consider adding metrics.",
		},
		{
			name:        "span with leading remark",
			text:        "Sure! [[INSERT]]Led a team of 5 engineers.[[/INSERT]]",
			wantContent: "Led a team of 5 engineers.",
			wantInsert:  true,
			wantCleaned: "Sure!",
		},
		{
			name:        "bare span substitutes acknowledgement",
			text:        "[[INSERT]]PROFESSIONAL SUMMARY\nResults-driven engineer.[[/INSERT]]",
			wantContent: "PROFESSIONAL SUMMARY\nResults-driven engineer.",
			wantInsert:  true,
			wantCleaned: DefaultAcknowledgement,
		},
		{
			name:        "interior whitespace trimmed",
			text:        "[[INSERT]]\n  Increased revenue by 40%.  \n[[/INSERT]] Updated!",
			wantContent: "Increased revenue by 40%.",
			wantInsert:  true,
			wantCleaned: "Updated!",
		},
		{
			name:        "only first span honored",
			text:        "[[INSERT]]first[[/INSERT]] and [[INSERT]]second[[/INSERT]]",
			wantContent: "first",
			wantInsert:  true,
			wantCleaned: "and [[INSERT]]second[[/INSERT]]",
		},
		{
			name:        "unclosed marker is literal text",
			text:        "[[INSERT]]dangling content",
			wantContent: "",
			wantInsert:  false,
			wantCleaned: "[[INSERT]]dangling content",
		},
		{
			name:        "empty interior still counts as insert",
			text:        "[[INSERT]][[/INSERT]] Cleared it.",
			wantContent: "",
			wantInsert:  true,
			wantCleaned: "Cleared it.",
		},
		{
			name:        "multiline span",
			text:        "Here you go:\n[[INSERT]]SKILLS\nGo, Python, SQL[[/INSERT]]",
			wantContent: "SKILLS\nGo, Python, SQL",
			wantInsert:  true,
			wantCleaned: "Here you go:",
		},
		{
			name:        "empty input",
			text:        "",
			wantContent: "",
			wantInsert:  false,
			wantCleaned: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.text)

			if result.InsertContent != tt.wantContent {
				t.Errorf("InsertContent = %q, want %q", result.InsertContent, tt.wantContent)
			}
			if result.HasInsert != tt.wantInsert {
				t.Errorf("HasInsert = %v, want %v", result.HasInsert, tt.wantInsert)
			}
			if result.CleanedMessage != tt.wantCleaned {
				t.Errorf("CleanedMessage = %q, want %q", result.CleanedMessage, tt.wantCleaned)
			}
		})
	}
}
