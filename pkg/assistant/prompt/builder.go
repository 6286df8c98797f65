package prompt

import (
	"strings"

	"ai-resume-be/pkg/assistant/intent"
)

const emptyDocumentPlaceholder = "(Empty document - help them start)"

// Builder composes the assistant system prompt: role preamble, the user's
// current resume, the selection being edited (if any), the detected intent,
// and the static rules document. Pure string composition; identical inputs
// produce a byte-identical prompt.
type Builder struct {
	rules           string
	documentContent string
	selectedText    string
	hasSelection    bool
	intent          intent.Intent
}

// NewBuilder creates a prompt builder around the static rules document.
func NewBuilder(rules string) *Builder {
	return &Builder{rules: rules}
}

// WithDocument sets the resume text to embed.
func (b *Builder) WithDocument(content string) *Builder {
	b.documentContent = content
	return b
}

// WithSelection quotes the selected text for targeted edits.
func (b *Builder) WithSelection(text string) *Builder {
	b.selectedText = text
	b.hasSelection = true
	return b
}

// WithIntent tags the prompt with the detected user intent.
func (b *Builder) WithIntent(it intent.Intent) *Builder {
	b.intent = it
	return b
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeResume(&prompt)
	b.writeSelection(&prompt)
	b.writeIntent(&prompt)
	prompt.WriteString(b.rules)

	return prompt.String()
}

func (b *Builder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString("You are an expert resume writer. You help users create resumes that are professional, human-sounding, and results-driven.\n\n")
}

func (b *Builder) writeResume(prompt *strings.Builder) {
	content := b.documentContent
	if content == "" {
		content = emptyDocumentPlaceholder
	}

	prompt.WriteString("THE USER'S CURRENT RESUME:\n")
	prompt.WriteString("===== RESUME START =====\n")
	prompt.WriteString(content)
	prompt.WriteString("\n===== RESUME END =====\n\n")
}

func (b *Builder) writeSelection(prompt *strings.Builder) {
	if !b.hasSelection {
		return
	}

	prompt.WriteString("SELECTED TEXT (edit this specifically):\n\"")
	prompt.WriteString(b.selectedText)
	prompt.WriteString("\"\n")
}

func (b *Builder) writeIntent(prompt *strings.Builder) {
	it := b.intent
	if it == "" {
		it = intent.IntentGeneral
	}

	prompt.WriteString("USER INTENT: ")
	prompt.WriteString(string(it))
	prompt.WriteString("\n\n")
}
