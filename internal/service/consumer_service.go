package service

import (
	"context"
	"encoding/json"

	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
)

const archiveModule = "CHAT_ARCHIVE"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists chat turns published on the archive topic.
type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	chatMessages contract.ChatMessageRepository
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	chatMessages contract.ChatMessageRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		chatMessages: chatMessages,
		logger:       log,
	}
}

// Consume subscribes and processes messages in the background until ctx
// is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ArchiveChatTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(archiveModule, "Failed to unmarshal chat turn", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err,
		})
		// redelivery cannot fix a malformed payload
		msg.Ack()
		return
	}

	record := &entity.ChatMessage{
		CommunicationId: payload.CommunicationId,
		Role:            entity.MessageRole(payload.Role),
		Message:         payload.Message,
		LlmModel:        entity.LLMModel(payload.LlmModel),
		Timestamp:       payload.Timestamp,
	}
	if err := cs.chatMessages.Create(ctx, record); err != nil {
		cs.logger.Error(archiveModule, "Failed to persist chat turn", map[string]interface{}{
			"communication_id": payload.CommunicationId,
			"error":            err,
		})
		// gochannel redelivers a nacked message immediately, which would
		// spin while the store is down. The turn is dropped and logged.
		msg.Ack()
		return
	}

	cs.logger.Debug(archiveModule, "Chat turn archived", map[string]interface{}{
		"communication_id": payload.CommunicationId,
		"id":               record.Id,
	})
	msg.Ack()
}
