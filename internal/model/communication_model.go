package model

import (
	"time"

	"github.com/google/uuid"
)

// Communication column names are the snake_case forms of the document
// field names used by the Mongo store (public_id <-> publicId).
type Communication struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PublicId           string    `gorm:"column:public_id;type:text;not null;uniqueIndex"`
	LlmModel           string    `gorm:"column:llm_model;type:text;not null"`
	VoiceLanguageCode  string    `gorm:"column:voice_language_code;type:text;not null"`
	VoiceGender        string    `gorm:"column:voice_gender;type:text;not null"`
	CustomPromptSuffix string    `gorm:"column:custom_prompt_suffix;type:text;not null"`
	SubtitlesEnabled   bool      `gorm:"column:subtitles_enabled;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Communication) TableName() string {
	return "communications"
}
