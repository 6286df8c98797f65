package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Seeded into every new editor session.
	AssistantGreeting = "Hi! I'm your AI resume assistant. Select text to improve it, or ask me to help you write new sections. What would you like to work on?"

	// Returned in-conversation when the daily free quota is spent. Not an error.
	QuotaExhaustedMessage = "You've used all 3 free AI improvements for today. Upgrade to Pro for unlimited access!"

	// Single fixed message for any provider failure: transport error,
	// non-success status, or a success response with no content.
	ConnectivityErrorMessage = "I'm having trouble connecting right now. Please try again in a moment."
)

// Quick actions that rewrite the current selection. The prompt is sent as the
// user message; the selection itself travels in the system prompt.
var SelectionActionPrompts = map[string]string{
	"improve":     "Improve this text to be more impactful and professional. Use strong action verbs and quantify achievements where possible. Return the improved version in [[INSERT]]...[[/INSERT]] tags.",
	"shorten":     "Make this text more concise while keeping the key information. Return the shortened version in [[INSERT]]...[[/INSERT]] tags.",
	"expand":      "Expand this text with more detail and specific achievements. Return the expanded version in [[INSERT]]...[[/INSERT]] tags.",
	"fix-grammar": "Fix any grammar, spelling, or punctuation errors in this text. Return the corrected version in [[INSERT]]...[[/INSERT]] tags.",
}

// SectionFlow is a two-step template flow: the assistant asks Question first,
// then GeneratePrompt is appended to the user's next reply before it goes to
// the model. The reply shown in the conversation stays untouched.
type SectionFlow struct {
	Question       string
	GeneratePrompt string
}

var SectionFlows = map[string]SectionFlow{
	"add-summary": {
		Question: `I'd love to help you write a compelling Professional Summary! Quick questions:

1. What role are you targeting?
2. How many years of experience do you have?

Just tell me briefly and I'll craft something great.`,
		GeneratePrompt: `Based on the user's answers, generate a Professional Summary using this formula:
"[Descriptor] [Job Title] with [X]+ years of experience in [field]. [Key expertise]. [Proven result with metric]."

Use their actual details - no brackets or placeholders. Wrap the final summary in [[INSERT]]...[[/INSERT]] tags.`,
	},
	"add-experience": {
		Question: `I'll help you add a work experience entry! Please share:

1. Job title
2. Company name
3. Dates (start - end)
4. 2-3 key things you accomplished there

I'll turn this into polished, quantified bullet points.`,
		GeneratePrompt: `Based on the user's job details, generate a polished Work Experience entry with:
- Job Title
- Company Name
- Dates | Location
- 3-4 bullet points using action verbs and metrics

Use their actual information. If they didn't mention numbers, help estimate reasonable ones. Wrap in [[INSERT]]...[[/INSERT]] tags.`,
	},
	"add-skills": {
		Question:       `What role are you applying for? I'll generate relevant technical and soft skills tailored to that position.`,
		GeneratePrompt: `Based on the target role, generate a Skills section with relevant technical skills, tools, and soft skills organized by category. Make it ATS-friendly. Wrap in [[INSERT]]...[[/INSERT]] tags.`,
	},
	"add-education": {
		Question: `I'll add your education! Please share:

1. Degree and field of study
2. University/college name
3. Graduation year
4. Any honors, GPA (if 3.5+), or relevant activities?`,
		GeneratePrompt: `Based on the user's education details, generate an Education section formatted as:
EDUCATION
[Degree Name]
[University Name]
[Year] | [Location if known]
[GPA/Honors if mentioned]

Use their actual details. Wrap in [[INSERT]]...[[/INSERT]] tags.`,
	},
}
