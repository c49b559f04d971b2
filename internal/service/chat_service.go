package service

import (
	"context"

	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository/contract"
)

type IChatService interface {
	ListHistory(ctx context.Context, communicationId string) ([]*dto.ChatMessageResponse, error)
}

type chatService struct {
	chatMessages contract.ChatMessageRepository
	logger       logger.ILogger
}

func NewChatService(chatMessages contract.ChatMessageRepository, log logger.ILogger) IChatService {
	return &chatService{chatMessages: chatMessages, logger: log}
}

// ListHistory returns archived turns, oldest first.
func (s *chatService) ListHistory(ctx context.Context, communicationId string) ([]*dto.ChatMessageResponse, error) {
	if communicationId == "" {
		return nil, apperror.Client("Missing communication_id")
	}

	messages, err := s.chatMessages.FindByCommunicationId(ctx, communicationId)
	if err != nil {
		s.logger.Error("CHAT", "Failed to load chat history", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err,
		})
		return nil, apperror.DurableStore("Failed to load chat history", err)
	}

	result := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, &dto.ChatMessageResponse{
			Id:              m.Id,
			CommunicationId: m.CommunicationId,
			Role:            string(m.Role),
			Message:         m.Message,
			LlmModel:        string(m.LlmModel),
			Timestamp:       m.Timestamp,
		})
	}
	return result, nil
}
