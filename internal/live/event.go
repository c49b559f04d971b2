package live

import (
	"encoding/json"

	"socialrobot-be/internal/entity"
)

type EventType string

const (
	EventSubtitlesToggle        EventType = "SUBTITLES_TOGGLE"
	EventSystemConfig           EventType = "SYSTEM_CONFIG"
	EventError                  EventType = "ERROR"
	EventUIError                EventType = "UI_ERROR"
	EventInvalidCommunicationId EventType = "INVALID_COMMUNICATION_ID"
)

// Event is a message pushed from the server to an attached bot.
// The set of variants is closed: only types in this package implement it.
type Event interface {
	EventType() EventType
	isEvent()
}

// SubtitlesToggle is encoded flat: {"type":"SUBTITLES_TOGGLE","enabled":true}.
type SubtitlesToggle struct {
	Enabled bool
}

func (SubtitlesToggle) EventType() EventType { return EventSubtitlesToggle }
func (SubtitlesToggle) isEvent()             {}

func (e SubtitlesToggle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    EventType `json:"type"`
		Enabled bool      `json:"enabled"`
	}{Type: e.EventType(), Enabled: e.Enabled})
}

// SystemConfig carries the full bot-facing configuration.
type SystemConfig struct {
	Config entity.CommunicationConfig
}

func (SystemConfig) EventType() EventType { return EventSystemConfig }
func (SystemConfig) isEvent()             {}

type systemConfigPayload struct {
	LlmModel          string `json:"llm_model"`
	VoiceLanguageCode string `json:"voice_language_code"`
	VoiceGender       string `json:"voice_gender"`
	SubtitlesEnabled  bool   `json:"subtitles_enabled"`
}

func (e SystemConfig) MarshalJSON() ([]byte, error) {
	type data struct {
		Config systemConfigPayload `json:"config"`
	}
	return json.Marshal(struct {
		Type EventType `json:"type"`
		Data data      `json:"data"`
	}{
		Type: e.EventType(),
		Data: data{Config: systemConfigPayload{
			LlmModel:          string(e.Config.LlmModel),
			VoiceLanguageCode: string(e.Config.VoiceLanguageCode),
			VoiceGender:       string(e.Config.VoiceGender),
			SubtitlesEnabled:  e.Config.SubtitlesEnabled,
		}},
	})
}

// Notice is a human readable message of one of the error-like types.
type Notice struct {
	Type    EventType
	Message string
}

func NewErrorNotice(message string) Notice {
	return Notice{Type: EventError, Message: message}
}

func (e Notice) EventType() EventType { return e.Type }
func (Notice) isEvent()               {}

func (e Notice) MarshalJSON() ([]byte, error) {
	type data struct {
		Message string `json:"message"`
	}
	return json.Marshal(struct {
		Type EventType `json:"type"`
		Data data      `json:"data"`
	}{Type: e.Type, Data: data{Message: e.Message}})
}

// Encode serialises any event into its wire form.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}
