package implementation

import (
	"context"
	"errors"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/mapper"
	"socialrobot-be/internal/model"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CommunicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunicationMapper
}

func NewCommunicationRepository(db *gorm.DB) contract.CommunicationRepository {
	return &CommunicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunicationMapper(),
	}
}

func (r *CommunicationRepositoryImpl) Create(ctx context.Context, communication *entity.Communication) error {
	m := r.mapper.ToModel(communication)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*communication = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommunicationRepositoryImpl) FindByPublicId(ctx context.Context, publicId string) (*entity.Communication, error) {
	var m model.Communication
	query := specification.Apply(r.db.WithContext(ctx), specification.ByPublicId{PublicId: publicId})

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommunicationRepositoryImpl) ExistsByPublicId(ctx context.Context, publicId string) (bool, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Communication{}), specification.ByPublicId{PublicId: publicId})
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommunicationRepositoryImpl) UpdateFields(ctx context.Context, publicId string, fields map[entity.CommunicationField]any) (bool, error) {
	updates := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		updates[string(field)] = value
	}

	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Communication{}), specification.ByPublicId{PublicId: publicId})
	res := query.Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
