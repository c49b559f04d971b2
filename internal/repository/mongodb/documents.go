package mongodb

import (
	"time"

	"socialrobot-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionCommunications = "communications"
	CollectionPrompts        = "prompts"
	CollectionChatMessages   = "chat_messages"
)

// Documents use camelCase keys. They are the camelCase forms of the
// snake_case field names used by the API and the postgres columns.
type communicationDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	PublicId           string             `bson:"publicId"`
	LlmModel           string             `bson:"llmModel"`
	VoiceLanguageCode  string             `bson:"voiceLanguageCode"`
	VoiceGender        string             `bson:"voiceGender"`
	CustomPromptSuffix string             `bson:"customPromptSuffix"`
	// Records written before subtitles existed lack the key.
	SubtitlesEnabled *bool     `bson:"subtitlesEnabled,omitempty"`
	CreatedAt        time.Time `bson:"createdAt"`
}

func newCommunicationDocument(c *entity.Communication) *communicationDocument {
	subtitles := c.Config.SubtitlesEnabled
	return &communicationDocument{
		PublicId:           c.PublicId,
		LlmModel:           string(c.Config.LlmModel),
		VoiceLanguageCode:  string(c.Config.VoiceLanguageCode),
		VoiceGender:        string(c.Config.VoiceGender),
		CustomPromptSuffix: c.Config.CustomPromptSuffix,
		SubtitlesEnabled:   &subtitles,
		CreatedAt:          c.CreatedAt,
	}
}

func (d *communicationDocument) toEntity() *entity.Communication {
	subtitles := true
	if d.SubtitlesEnabled != nil {
		subtitles = *d.SubtitlesEnabled
	}
	return &entity.Communication{
		PublicId: d.PublicId,
		Config: entity.CommunicationConfig{
			LlmModel:           entity.LLMModel(d.LlmModel),
			VoiceLanguageCode:  entity.VoiceLanguageCode(d.VoiceLanguageCode),
			VoiceGender:        entity.VoiceGender(d.VoiceGender),
			CustomPromptSuffix: d.CustomPromptSuffix,
			SubtitlesEnabled:   subtitles,
		},
		CreatedAt: d.CreatedAt,
	}
}

type promptDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	CommunicationId     string             `bson:"communicationId"`
	UserInput           string             `bson:"userInput"`
	InitialPromptSuffix string             `bson:"initialPromptSuffix"`
	GeneratedPrompt     string             `bson:"generatedPrompt"`
	LlmModel            string             `bson:"llmModel"`
	CreatedAt           time.Time          `bson:"createdAt"`
}

func (d *promptDocument) toEntity() *entity.Prompt {
	return &entity.Prompt{
		Id:                  d.ID.Hex(),
		CommunicationId:     d.CommunicationId,
		UserInput:           d.UserInput,
		InitialPromptSuffix: d.InitialPromptSuffix,
		GeneratedPrompt:     d.GeneratedPrompt,
		LlmModel:            entity.LLMModel(d.LlmModel),
		CreatedAt:           d.CreatedAt,
	}
}

type chatMessageDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CommunicationId string             `bson:"communicationId"`
	Role            string             `bson:"role"`
	Message         string             `bson:"message"`
	LlmModel        string             `bson:"llmModel,omitempty"`
	Timestamp       time.Time          `bson:"timestamp"`
}

func (d *chatMessageDocument) toEntity() *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:              d.ID.Hex(),
		CommunicationId: d.CommunicationId,
		Role:            entity.MessageRole(d.Role),
		Message:         d.Message,
		LlmModel:        entity.LLMModel(d.LlmModel),
		Timestamp:       d.Timestamp,
	}
}
