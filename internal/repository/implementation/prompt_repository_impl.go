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

type PromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return &PromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func (r *PromptRepositoryImpl) Create(ctx context.Context, prompt *entity.Prompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptRepositoryImpl) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.Prompt, error) {
	var models []*model.Prompt
	query := specification.Apply(r.db.WithContext(ctx),
		specification.ByCommunicationId{CommunicationId: communicationId},
		specification.OrderBy{Field: "created_at"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	prompts := make([]*entity.Prompt, 0, len(models))
	for _, m := range models {
		prompts = append(prompts, r.mapper.ToEntity(m))
	}
	return prompts, nil
}
