package entity

import (
	"fmt"
	"sort"
	"time"
)

type LLMModel string

const (
	LLMModelGemma2  LLMModel = "gemma2"
	LLMModelLlama3  LLMModel = "llama3"
	LLMModelLlama32 LLMModel = "llama3.2"
	LLMModelMistral LLMModel = "mistral"
	LLMModelPhi3    LLMModel = "phi3"
	LLMModelQwen25  LLMModel = "qwen2.5"
	LLMModelNotSet  LLMModel = ""
)

var supportedLLMModels = []LLMModel{
	LLMModelGemma2,
	LLMModelLlama3,
	LLMModelLlama32,
	LLMModelMistral,
	LLMModelPhi3,
	LLMModelQwen25,
}

func (m LLMModel) IsValid() bool {
	for _, s := range supportedLLMModels {
		if m == s {
			return true
		}
	}
	return false
}

type VoiceLanguageCode string

const (
	VoiceLanguageDeDE VoiceLanguageCode = "de-DE"
	VoiceLanguageEnGB VoiceLanguageCode = "en-GB"
	VoiceLanguageEnUS VoiceLanguageCode = "en-US"
	VoiceLanguageEsES VoiceLanguageCode = "es-ES"
	VoiceLanguageFrFR VoiceLanguageCode = "fr-FR"
)

var supportedVoiceLanguages = []VoiceLanguageCode{
	VoiceLanguageDeDE,
	VoiceLanguageEnGB,
	VoiceLanguageEnUS,
	VoiceLanguageEsES,
	VoiceLanguageFrFR,
}

func (v VoiceLanguageCode) IsValid() bool {
	for _, s := range supportedVoiceLanguages {
		if v == s {
			return true
		}
	}
	return false
}

type VoiceGender string

const (
	VoiceGenderFemale  VoiceGender = "FEMALE"
	VoiceGenderMale    VoiceGender = "MALE"
	VoiceGenderNeutral VoiceGender = "NEUTRAL"
)

var supportedVoiceGenders = []VoiceGender{
	VoiceGenderFemale,
	VoiceGenderMale,
	VoiceGenderNeutral,
}

func (g VoiceGender) IsValid() bool {
	for _, s := range supportedVoiceGenders {
		if g == s {
			return true
		}
	}
	return false
}

// SupportedLLMModels returns the model names sorted alphabetically.
func SupportedLLMModels() []string {
	out := make([]string, 0, len(supportedLLMModels))
	for _, m := range supportedLLMModels {
		out = append(out, string(m))
	}
	sort.Strings(out)
	return out
}

func SupportedVoiceLanguages() []string {
	out := make([]string, 0, len(supportedVoiceLanguages))
	for _, v := range supportedVoiceLanguages {
		out = append(out, string(v))
	}
	sort.Strings(out)
	return out
}

func SupportedVoiceGenders() []string {
	out := make([]string, 0, len(supportedVoiceGenders))
	for _, g := range supportedVoiceGenders {
		out = append(out, string(g))
	}
	sort.Strings(out)
	return out
}

// CommunicationConfig is the operator-controlled part of a communication.
type CommunicationConfig struct {
	LlmModel           LLMModel
	VoiceLanguageCode  VoiceLanguageCode
	VoiceGender        VoiceGender
	CustomPromptSuffix string
	SubtitlesEnabled   bool
}

// DefaultCommunicationConfig is what a freshly created communication holds.
// The model is intentionally left unset until the operator picks one.
func DefaultCommunicationConfig() CommunicationConfig {
	return CommunicationConfig{
		LlmModel:           LLMModelNotSet,
		VoiceLanguageCode:  VoiceLanguageEnUS,
		VoiceGender:        VoiceGenderMale,
		CustomPromptSuffix: "",
		SubtitlesEnabled:   true,
	}
}

// Communication is the durable session record, keyed by PublicId.
type Communication struct {
	PublicId  string
	Config    CommunicationConfig
	CreatedAt time.Time
}

// CommunicationField names a single mutable column of a communication,
// in the service's snake_case convention.
type CommunicationField string

const (
	FieldLlmModel           CommunicationField = "llm_model"
	FieldVoiceLanguageCode  CommunicationField = "voice_language_code"
	FieldVoiceGender        CommunicationField = "voice_gender"
	FieldCustomPromptSuffix CommunicationField = "custom_prompt_suffix"
	FieldSubtitlesEnabled   CommunicationField = "subtitles_enabled"
)

// Set assigns one field. value must carry the field's own type
// (LLMModel, VoiceLanguageCode, VoiceGender, string or bool).
func (c *CommunicationConfig) Set(field CommunicationField, value any) error {
	var ok bool
	switch field {
	case FieldLlmModel:
		c.LlmModel, ok = value.(LLMModel)
	case FieldVoiceLanguageCode:
		c.VoiceLanguageCode, ok = value.(VoiceLanguageCode)
	case FieldVoiceGender:
		c.VoiceGender, ok = value.(VoiceGender)
	case FieldCustomPromptSuffix:
		c.CustomPromptSuffix, ok = value.(string)
	case FieldSubtitlesEnabled:
		c.SubtitlesEnabled, ok = value.(bool)
	default:
		return fmt.Errorf("unknown communication field %q", field)
	}
	if !ok {
		return fmt.Errorf("field %q: unexpected value type %T", field, value)
	}
	return nil
}

// SetAll applies every field and stops at the first error, leaving c
// partially updated.
func (c *CommunicationConfig) SetAll(fields map[CommunicationField]any) error {
	for field, value := range fields {
		if err := c.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}
