package services

// Action kinds recognized by the AI service.
const (
	ActionSummarize   = "summarize"
	ActionExpand      = "expand"
	ActionUnderstand  = "understand"
	ActionActionItems = "action_items"
	ActionAutoTitle   = "auto_title"
)

// actionPrompts maps each action kind to its instruction. The exact wording is
// part of the external contract: it shapes what the model returns.
var actionPrompts = map[string]string{
	ActionSummarize:   "Produce a short bullet-point summary of this note:",
	ActionExpand:      "Expand this note's idea into a more detailed, professional paragraph:",
	ActionUnderstand:  "Explain the concept in this note as if I am a beginner (ELI5):",
	ActionActionItems: "Produce a concrete to-do list based on this note:",
	ActionAutoTitle:   "Produce a very short title (at most 6 words), catchy and relevant, for the following text. Return only the title text, no quotes or prefix:",
}

const fallbackPrompt = "Analyze this note:"

// BuildPrompt composes the full prompt for an action kind. Unknown actions get
// the generic instruction. Auto-title appends the raw text with no framing so
// the model returns only the title.
func BuildPrompt(action, text string) string {
	instruction, ok := actionPrompts[action]
	if !ok {
		instruction = fallbackPrompt
	}
	if action == ActionAutoTitle {
		return instruction + "\n\n" + text
	}
	return instruction + "\n\nNote contents:\n" + text
}
