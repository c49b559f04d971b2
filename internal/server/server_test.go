package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"socialrobot-be/internal/bootstrap"
	"socialrobot-be/internal/config"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			SocketLogFilePath:  filepath.Join(t.TempDir(), "socket.log"),
			CorsAllowedOrigins: "*",
		},
		Database: config.DatabaseConfig{Driver: string(repository.DriverMemory)},
		Session:  config.SessionConfig{IdMaxAttempts: 10, SendBufferSize: 16},
	}

	container := bootstrap.NewContainer(cfg, repository.NewMemoryStore(), logger.NewNopLogger())
	require.NoError(t, container.ConsumerService.Consume(context.Background()))
	t.Cleanup(func() { _ = container.Close(context.Background()) })

	return New(cfg, container)
}

func TestServerRoutesThroughContainer(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodPost, "/api/create-communication", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created["communicationId"]
	assert.Len(t, id, 11)

	body := `{"communication_id":"` + id + `","llm_model":"llama3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/set-communication-config", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body = `{"communication_id":"` + id + `","prompt":"hi"}`
	req = httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var generated map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&generated))
	assert.Equal(t, "\nUser: hi\nAssistant:", generated["full_prompt"])
	assert.Equal(t, "llama3", generated["model"])
}

func TestServerMountsBotSocket(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/ws/communication/lusab-babad", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestServerAllowsCorsPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/create-communication", nil)
	req.Header.Set("Origin", "http://panel.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
