package contract

import (
	"context"

	"socialrobot-be/internal/entity"
)

type CommunicationRepository interface {
	Create(ctx context.Context, communication *entity.Communication) error
	// FindByPublicId returns (nil, nil) when no record exists.
	FindByPublicId(ctx context.Context, publicId string) (*entity.Communication, error)
	ExistsByPublicId(ctx context.Context, publicId string) (bool, error)
	// UpdateFields sets the given fields and reports whether a record matched.
	UpdateFields(ctx context.Context, publicId string, fields map[entity.CommunicationField]any) (bool, error)
}
