package entity

import "time"

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

type ChatMessage struct {
	Id              string
	CommunicationId string
	Role            MessageRole
	Message         string
	LlmModel        LLMModel
	Timestamp       time.Time
}
