package contract

import (
	"context"

	"socialrobot-be/internal/entity"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.ChatMessage, error)
}
