package dto

type CreateCommunicationResponse struct {
	CommunicationId string `json:"communicationId"`
}

// Pointer fields tell a missing value apart from an empty or false one.
type SetPromptSuffixRequest struct {
	CommunicationId string  `json:"communication_id" validate:"required"`
	Suffix          *string `json:"suffix" validate:"required"`
}

type SetSubtitlesEnabledRequest struct {
	CommunicationId string `json:"communication_id" validate:"required"`
	Enabled         *bool  `json:"enabled" validate:"required"`
}

// SetCommunicationConfigRequest updates any subset of the voice and model
// settings. At least one of them must be present.
type SetCommunicationConfigRequest struct {
	CommunicationId   string  `json:"communication_id" validate:"required"`
	LlmModel          *string `json:"llm_model" validate:"required_without_all=VoiceLanguageCode VoiceGender"`
	VoiceLanguageCode *string `json:"voice_language_code"`
	VoiceGender       *string `json:"voice_gender"`
}

type ClearHistoryRequest struct {
	CommunicationId string `json:"communication_id" validate:"required"`
}

type CommunicationConfigResponse struct {
	SubtitlesEnabled   bool   `json:"subtitlesEnabled"`
	CustomPromptSuffix string `json:"customPromptSuffix"`
	LlmModel           string `json:"llmModel"`
	VoiceLanguageCode  string `json:"voiceLanguageCode"`
	VoiceGender        string `json:"voiceGender"`
}

type ControlPanelConfigResponse struct {
	Models  []string `json:"models"`
	Voices  []string `json:"voices"`
	Genders []string `json:"genders"`
}
