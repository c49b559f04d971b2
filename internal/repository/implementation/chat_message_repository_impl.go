package implementation

import (
	"context"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/mapper"
	"socialrobot-be/internal/model"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMessageMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMessageMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := specification.Apply(r.db.WithContext(ctx),
		specification.ByCommunicationId{CommunicationId: communicationId},
		specification.OrderBy{Field: "timestamp"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, r.mapper.ToEntity(m))
	}
	return messages, nil
}
