package model

import (
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CommunicationId     string    `gorm:"column:communication_id;type:text;not null;index"`
	UserInput           string    `gorm:"column:user_input;type:text;not null"`
	InitialPromptSuffix string    `gorm:"column:initial_prompt_suffix;type:text;not null"`
	GeneratedPrompt     string    `gorm:"column:generated_prompt;type:text;not null"`
	LlmModel            string    `gorm:"column:llm_model;type:text;not null"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Prompt) TableName() string {
	return "prompts"
}
