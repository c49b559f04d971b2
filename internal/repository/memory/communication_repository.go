package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

var ErrDuplicatePublicId = errors.New("communication public id already exists")

// CommunicationRepository keeps records in process memory. Records never
// expire; the store lives as long as the process.
type CommunicationRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewCommunicationRepository() contract.CommunicationRepository {
	return &CommunicationRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *CommunicationRepository) Create(ctx context.Context, communication *entity.Communication) error {
	stored := *communication
	if err := r.cache.Add(communication.PublicId, &stored, cache.NoExpiration); err != nil {
		return fmt.Errorf("%w: %s", ErrDuplicatePublicId, communication.PublicId)
	}
	return nil
}

func (r *CommunicationRepository) FindByPublicId(ctx context.Context, publicId string) (*entity.Communication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(publicId)
	if !found {
		return nil, nil
	}
	out := *x.(*entity.Communication)
	return &out, nil
}

func (r *CommunicationRepository) ExistsByPublicId(ctx context.Context, publicId string) (bool, error) {
	_, found := r.cache.Get(publicId)
	return found, nil
}

func (r *CommunicationRepository) UpdateFields(ctx context.Context, publicId string, fields map[entity.CommunicationField]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(publicId)
	if !found {
		return false, nil
	}

	next := *x.(*entity.Communication)
	if err := next.Config.SetAll(fields); err != nil {
		return true, err
	}
	r.cache.Set(publicId, &next, cache.NoExpiration)
	return true, nil
}
