package mapper

import (
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/model"
)

type CommunicationMapper struct{}

func NewCommunicationMapper() *CommunicationMapper {
	return &CommunicationMapper{}
}

func (m *CommunicationMapper) ToEntity(c *model.Communication) *entity.Communication {
	if c == nil {
		return nil
	}
	return &entity.Communication{
		PublicId: c.PublicId,
		Config: entity.CommunicationConfig{
			LlmModel:           entity.LLMModel(c.LlmModel),
			VoiceLanguageCode:  entity.VoiceLanguageCode(c.VoiceLanguageCode),
			VoiceGender:        entity.VoiceGender(c.VoiceGender),
			CustomPromptSuffix: c.CustomPromptSuffix,
			SubtitlesEnabled:   c.SubtitlesEnabled,
		},
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommunicationMapper) ToModel(c *entity.Communication) *model.Communication {
	if c == nil {
		return nil
	}
	return &model.Communication{
		PublicId:           c.PublicId,
		LlmModel:           string(c.Config.LlmModel),
		VoiceLanguageCode:  string(c.Config.VoiceLanguageCode),
		VoiceGender:        string(c.Config.VoiceGender),
		CustomPromptSuffix: c.Config.CustomPromptSuffix,
		SubtitlesEnabled:   c.Config.SubtitlesEnabled,
		CreatedAt:          c.CreatedAt,
	}
}
