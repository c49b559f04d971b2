package nats

import (
	"encoding/json"
	"testing"
	"time"

	"socialrobot-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	e := events.New(events.PromptGenerated, nil)
	assert.Equal(t, "socialrobot.PROMPT_GENERATED", Subject(e))
}

func TestMarshal(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	e := events.BaseEvent{
		Type:       events.CommunicationCreated,
		Data:       map[string]interface{}{"communicationId": "lusab-babad"},
		OccurredAt: at,
	}

	raw, err := Marshal(e)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "COMMUNICATION_CREATED", got["type"])
	assert.Equal(t, map[string]interface{}{"communicationId": "lusab-babad"}, got["data"])
	assert.Equal(t, "2024-05-06T07:08:09Z", got["occurredAt"])
}
