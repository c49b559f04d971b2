package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/repository"
	"socialrobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app   *fiber.App
	store repository.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := logger.NewNopLogger()
	store := repository.NewMemoryStore()
	registry := live.NewRegistry()
	bridge := live.NewBridge(registry, log)

	comms := service.NewCommunicationService(store.Communications(), registry, bridge, nil, log, service.CommunicationServiceOptions{})
	prompts := service.NewPromptService(store.Communications(), store.Prompts(), nil, log)
	chats := service.NewChatService(store.ChatMessages(), log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	api := app.Group("/api")
	NewCommunicationController(comms).RegisterRoutes(api)
	promptController := NewPromptController(prompts)
	promptController.RegisterRoutes(api)
	promptController.RegisterRootRoutes(app)
	NewChatController(chats).RegisterRoutes(api)

	return &testApp{app: app, store: store}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (a *testApp) create(t *testing.T) string {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/api/create-communication", nil)
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := body["communicationId"].(string)
	require.True(t, ok, body)
	return id
}

func TestCreateCommunication(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	assert.Len(t, id, 11)
	record, err := a.store.Communications().FindByPublicId(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestSetPromptSuffix_Endpoint(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	status, body := a.do(t, http.MethodPost, "/api/set-prompt-suffix", map[string]any{"communication_id": id, "suffix": "Be kind."})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Prompt suffix updated successfully", body["message"])

	status, _ = a.do(t, http.MethodPost, "/api/set-prompt-suffix", map[string]any{"communication_id": id})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodPost, "/api/set-prompt-suffix", map[string]any{"communication_id": "zuzuz-zuzuz", "suffix": "x"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSetSubtitlesEnabled_Endpoint(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	status, _ := a.do(t, http.MethodPost, "/api/set-subtitles-enabled", map[string]any{"communication_id": id, "enabled": false})
	assert.Equal(t, fiber.StatusOK, status)

	status, body := a.do(t, http.MethodGet, "/api/get-communication-config?communication_id="+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["subtitlesEnabled"])
	assert.Equal(t, "en-US", data["voiceLanguageCode"])

	status, _ = a.do(t, http.MethodPost, "/api/set-subtitles-enabled", map[string]any{"communication_id": id})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodPost, "/api/set-subtitles-enabled", map[string]any{"communication_id": "zuzuz-zuzuz", "enabled": true})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMalformedBodyIsClientError(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/set-prompt-suffix", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenerate_Endpoint(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	status, body := a.do(t, http.MethodPost, "/generate", map[string]any{"prompt": "hello", "communication_id": id})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No LLM model configured for this communication", body["message"])

	status, _ = a.do(t, http.MethodPost, "/api/set-communication-config", map[string]any{"communication_id": id, "llm_model": "llama3"})
	require.Equal(t, fiber.StatusOK, status)
	status, _ = a.do(t, http.MethodPost, "/api/set-prompt-suffix", map[string]any{"communication_id": id, "suffix": "You are helpful."})
	require.Equal(t, fiber.StatusOK, status)

	for _, path := range []string{"/generate", "/api/generate"} {
		status, body = a.do(t, http.MethodPost, path, map[string]any{"prompt": "hello", "communication_id": id})
		require.Equal(t, fiber.StatusOK, status, path)
		assert.Equal(t, map[string]any{
			"full_prompt": "You are helpful.\nUser: hello\nAssistant:",
			"model":       "llama3",
		}, body)
	}

	status, body = a.do(t, http.MethodGet, "/api/prompts?communication_id="+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, _ = a.do(t, http.MethodPost, "/generate", map[string]any{"prompt": "hello", "communication_id": "zuzuz-zuzuz"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = a.do(t, http.MethodPost, "/generate", map[string]any{"communication_id": id})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSetCommunicationConfig_InvalidModel(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	status, body := a.do(t, http.MethodPost, "/api/set-communication-config", map[string]any{"communication_id": id, "llm_model": "gpt-4"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "Valid models: gemma2")
}

func TestControlPanelConfig_Endpoint(t *testing.T) {
	a := newTestApp(t)

	status, body := a.do(t, http.MethodGet, "/api/controlpanel-config", nil)
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Len(t, data["models"], len(entity.SupportedLLMModels()))
	assert.Equal(t, []any{"FEMALE", "MALE", "NEUTRAL"}, data["genders"])
}

func TestClearHistoryAndChatHistory_Endpoints(t *testing.T) {
	a := newTestApp(t)
	id := a.create(t)

	status, _ := a.do(t, http.MethodPost, "/api/clear-history", map[string]any{"communication_id": id})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = a.do(t, http.MethodPost, "/api/clear-history", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := a.do(t, http.MethodGet, "/api/chat-history?communication_id="+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	// empty lists are omitted from the envelope
	assert.Empty(t, body["data"])
}
