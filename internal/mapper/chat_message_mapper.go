package mapper

import (
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/model"

	"github.com/google/uuid"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:              c.Id.String(),
		CommunicationId: c.CommunicationId,
		Role:            entity.MessageRole(c.Role),
		Message:         c.Message,
		LlmModel:        entity.LLMModel(c.LlmModel),
		Timestamp:       c.Timestamp,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	id, _ := uuid.Parse(c.Id)
	return &model.ChatMessage{
		Id:              id,
		CommunicationId: c.CommunicationId,
		Role:            string(c.Role),
		Message:         c.Message,
		LlmModel:        string(c.LlmModel),
		Timestamp:       c.Timestamp,
	}
}
