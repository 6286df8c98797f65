package parser

import (
	"regexp"
	"strings"
)

const (
	InsertOpenMarker  = "[[INSERT]]"
	InsertCloseMarker = "[[/INSERT]]"

	// Substituted when stripping the insertion span leaves nothing to say.
	DefaultAcknowledgement = "Done! I've updated your document."
)

// insertPattern matches the first delimited insertion span, non-greedy so a
// stray second open marker stays in the conversational remainder.
var insertPattern = regexp.MustCompile(`(?s)\[\[INSERT\]\](.*?)\[\[/INSERT\]\]`)

// Result separates an assistant reply into document content and the
// conversational remainder.
type Result struct {
	// InsertContent is the trimmed interior of the first insertion span, or
	// empty when the reply carries no span.
	InsertContent string
	// HasInsert reports whether a span was found; an empty interior still
	// counts as an insert.
	HasInsert bool
	// CleanedMessage is the reply with the span (markers included) removed.
	CleanedMessage string
}

// Parse extracts the first [[INSERT]]...[[/INSERT]] span from an assistant
// reply. Only the first pair is honored; later markers are left as literal
// text. Input without markers is returned unchanged.
func Parse(text string) Result {
	loc := insertPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return Result{CleanedMessage: text}
	}

	content := strings.TrimSpace(text[loc[2]:loc[3]])
	cleaned := strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	if cleaned == "" {
		cleaned = DefaultAcknowledgement
	}

	return Result{
		InsertContent:  content,
		HasInsert:      true,
		CleanedMessage: cleaned,
	}
}
