package intent

import "strings"

// Intent is a coarse classification of what the user wants done with the
// resume. It is interpolated into the system prompt so the model can pick the
// matching response behavior.
type Intent string

const (
	IntentReview   Intent = "review"
	IntentRate     Intent = "rate"
	IntentATSCheck Intent = "ats-check"
	IntentGaps     Intent = "gaps"
	IntentCritique Intent = "critique"
	IntentGeneral  Intent = "general"
)

// rule order is the priority order: the first matching rule wins.
var rules = []struct {
	keywords []string
	intent   Intent
}{
	{[]string{"read", "review", "look at"}, IntentReview},
	{[]string{"rate", "score", "how good"}, IntentRate},
	{[]string{"ats", "applicant tracking"}, IntentATSCheck},
	{[]string{"missing", "need", "add"}, IntentGaps},
	{[]string{"weak", "wrong", "fix"}, IntentCritique},
}

// Detect classifies a user message by case-insensitive keyword containment.
// Messages matching no rule classify as general.
func Detect(message string) Intent {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return IntentGeneral
}
