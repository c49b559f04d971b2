package contract

import (
	"context"

	"socialrobot-be/internal/entity"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *entity.Prompt) error
	FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.Prompt, error)
}
