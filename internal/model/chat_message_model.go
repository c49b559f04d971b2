package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CommunicationId string    `gorm:"column:communication_id;type:text;not null;index"`
	Role            string    `gorm:"column:role;type:text;not null"`
	Message         string    `gorm:"column:message;type:text;not null"`
	LlmModel        string    `gorm:"column:llm_model;type:text"`
	Timestamp       time.Time `gorm:"column:timestamp;not null;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
