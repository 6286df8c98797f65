package prompt

import (
	"strings"
	"testing"

	"ai-resume-be/pkg/assistant/intent"
)

const testRules = "RULES:\n1. Never invent employers."

func TestBuildEmbedsDocument(t *testing.T) {
	got := NewBuilder(testRules).
		WithDocument("EXPERIENCE\nAcme Corp").
		WithIntent(intent.IntentGeneral).
		Build()

	if !strings.HasPrefix(got, "You are an expert resume writer.") {
		t.Errorf("prompt does not open with the role preamble: %q", got[:40])
	}
	if !strings.Contains(got, "===== RESUME START =====\nEXPERIENCE\nAcme Corp\n===== RESUME END =====") {
		t.Errorf("resume block missing or malformed:\n%s", got)
	}
	if !strings.Contains(got, "USER INTENT: general\n") {
		t.Errorf("intent line missing:\n%s", got)
	}
	if !strings.HasSuffix(got, testRules) {
		t.Errorf("rules document must close the prompt")
	}
}

func TestBuildEmptyDocumentPlaceholder(t *testing.T) {
	got := NewBuilder(testRules).WithDocument("").Build()

	if !strings.Contains(got, "(Empty document - help them start)") {
		t.Errorf("empty document placeholder missing:\n%s", got)
	}
}

func TestBuildSelectionBlock(t *testing.T) {
	withSel := NewBuilder(testRules).
		WithDocument("doc").
		WithSelection("Helped with projects.").
		Build()

	if !strings.Contains(withSel, "SELECTED TEXT (edit this specifically):\n\"Helped with projects.\"\n") {
		t.Errorf("selection block missing:\n%s", withSel)
	}

	withoutSel := NewBuilder(testRules).WithDocument("doc").Build()
	if strings.Contains(withoutSel, "SELECTED TEXT") {
		t.Errorf("selection block present without a selection:\n%s", withoutSel)
	}
}

func TestBuildDefaultsIntentToGeneral(t *testing.T) {
	got := NewBuilder(testRules).WithDocument("doc").Build()

	if !strings.Contains(got, "USER INTENT: general\n") {
		t.Errorf("unset intent should render as general:\n%s", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	build := func() string {
		return NewBuilder(testRules).
			WithDocument("EXPERIENCE\nAcme Corp").
			WithSelection("Acme Corp").
			WithIntent(intent.IntentReview).
			Build()
	}

	first := build()
	for i := 0; i < 5; i++ {
		if next := build(); next != first {
			t.Fatalf("identical inputs produced different prompts")
		}
	}
}
