package dto

import "time"

type GeneratePromptRequest struct {
	Prompt          string `json:"prompt" validate:"required"`
	CommunicationId string `json:"communication_id" validate:"required"`
}

type GeneratePromptResponse struct {
	FullPrompt string `json:"full_prompt"`
	Model      string `json:"model"`
}

type PromptRecordResponse struct {
	Id                  string    `json:"id"`
	CommunicationId     string    `json:"communication_id"`
	UserInput           string    `json:"user_input"`
	InitialPromptSuffix string    `json:"initial_prompt_suffix"`
	GeneratedPrompt     string    `json:"generated_prompt"`
	LlmModel            string    `json:"llm_model"`
	CreatedAt           time.Time `json:"created_at"`
}
