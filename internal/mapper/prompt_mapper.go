package mapper

import (
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/model"

	"github.com/google/uuid"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}
	return &entity.Prompt{
		Id:                  p.Id.String(),
		CommunicationId:     p.CommunicationId,
		UserInput:           p.UserInput,
		InitialPromptSuffix: p.InitialPromptSuffix,
		GeneratedPrompt:     p.GeneratedPrompt,
		LlmModel:            entity.LLMModel(p.LlmModel),
		CreatedAt:           p.CreatedAt,
	}
}

// ToModel leaves Id zero when the entity id is not a UUID so the database
// assigns one.
func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}
	id, _ := uuid.Parse(p.Id)
	return &model.Prompt{
		Id:                  id,
		CommunicationId:     p.CommunicationId,
		UserInput:           p.UserInput,
		InitialPromptSuffix: p.InitialPromptSuffix,
		GeneratedPrompt:     p.GeneratedPrompt,
		LlmModel:            string(p.LlmModel),
		CreatedAt:           p.CreatedAt,
	}
}
