package memory

import (
	"context"
	"sort"
	"sync"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/repository/contract"

	"github.com/google/uuid"
)

type PromptRepository struct {
	mu      sync.RWMutex
	records map[string][]entity.Prompt
}

func NewPromptRepository() contract.PromptRepository {
	return &PromptRepository{records: make(map[string][]entity.Prompt)}
}

func (r *PromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prompt.Id == "" {
		prompt.Id = uuid.NewString()
	}
	r.records[prompt.CommunicationId] = append(r.records[prompt.CommunicationId], *prompt)
	return nil
}

func (r *PromptRepository) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.records[communicationId]
	out := make([]*entity.Prompt, 0, len(stored))
	for i := range stored {
		p := stored[i]
		out = append(out, &p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type ChatMessageRepository struct {
	mu      sync.RWMutex
	records map[string][]entity.ChatMessage
}

func NewChatMessageRepository() contract.ChatMessageRepository {
	return &ChatMessageRepository{records: make(map[string][]entity.ChatMessage)}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.Id == "" {
		message.Id = uuid.NewString()
	}
	r.records[message.CommunicationId] = append(r.records[message.CommunicationId], *message)
	return nil
}

func (r *ChatMessageRepository) FindByCommunicationId(ctx context.Context, communicationId string) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.records[communicationId]
	out := make([]*entity.ChatMessage, 0, len(stored))
	for i := range stored {
		m := stored[i]
		out = append(out, &m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
