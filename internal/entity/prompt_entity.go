package entity

import "time"

// Prompt records one composed prompt and the inputs it was built from.
type Prompt struct {
	Id                  string
	CommunicationId     string
	UserInput           string
	InitialPromptSuffix string
	GeneratedPrompt     string
	LlmModel            LLMModel
	CreatedAt           time.Time
}
