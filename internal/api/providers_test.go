package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/errors"
)

func TestProviderRoutes_Lifecycle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	testAPI := newTestAPI(t, svc, nil)

	resp := testAPI.Get("/api/v1/providers")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"providers": {}}`, resp.Body.String())

	resp = testAPI.Post("/api/v1/providers/openai", testProvider("gpt-4o"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	require.JSONEq(t, `{"id": "openai", "result": "created"}`, resp.Body.String())

	resp = testAPI.Post("/api/v1/providers/openai", testProvider("gpt-4o", "o3"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	require.JSONEq(t, `{"id": "openai", "result": "updated"}`, resp.Body.String())

	resp = testAPI.Get("/api/v1/providers/openai")
	require.Equal(t, http.StatusOK, resp.Code)

	var p config.Provider
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))
	require.Len(t, p.Models, 2)

	updated := testProvider("gpt-4o")
	updated.BaseURL = "https://proxy.internal/v1"
	resp = testAPI.Put("/api/v1/providers/openai", updated)
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	stored, err := svc.Provider("openai")
	require.NoError(t, err)
	require.Equal(t, "https://proxy.internal/v1", stored.BaseURL)

	resp = testAPI.Delete("/api/v1/providers/openai")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"id": "openai", "result": "deleted"}`, resp.Body.String())

	resp = testAPI.Delete("/api/v1/providers/openai")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"id": "openai", "result": "noop"}`, resp.Body.String())
}

func TestProviderRoutes_RejectsMalformedBody(t *testing.T) {
	t.Parallel()

	testAPI := newTestAPI(t, newTestService(t), nil)

	resp := testAPI.Post("/api/v1/providers/openai", map[string]any{"baseUrl": "https://x"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestProviderRoutes_IgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	testAPI := newTestAPI(t, svc, nil)

	body := `{
  "baseUrl": "https://api.example.com/v1",
  "api": "openai-completions",
  "headers": {"x-team": "core"},
  "models": [{
    "id": "gpt-4o", "name": "GPT-4o", "input": ["text"],
    "cost": {"input": 1, "output": 2, "cacheRead": 0, "cacheWrite": 0, "tier": "standard"},
    "contextWindow": 128000, "maxTokens": 4096, "compat": {"supportsStore": false}
  }]
}`

	resp := testAPI.Post("/api/v1/providers/openai", "Content-Type: application/json", strings.NewReader(body))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	require.JSONEq(t, `{"id": "openai", "result": "created"}`, resp.Body.String())

	resp = testAPI.Put("/api/v1/providers/openai", "Content-Type: application/json", strings.NewReader(body))
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	stored, err := svc.Provider("openai")
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com/v1", stored.BaseURL)
	require.Len(t, stored.Models, 1)
	require.Equal(t, uint64(128000), stored.Models[0].ContextWindow)
}

func TestProviderHandlers_Errors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := handleGetProvider(svc, "missing")
	require.ErrorIs(t, err, errors.ErrProviderNotFound)

	_, err = handleUpdateProvider(svc, &ProviderSaveRequest{ID: "missing", Body: testProvider("m")})
	require.ErrorIs(t, err, errors.ErrInvalidProvider)
	require.ErrorContains(t, err, "Provider 'missing' not found")

	_, err = handleAddProvider(svc, &ProviderSaveRequest{ID: "empty", Strict: true, Body: config.Provider{}})
	require.ErrorIs(t, err, errors.ErrInvalidProvider)
	require.ErrorContains(t, err, "base URL cannot be empty")
	require.False(t, svc.Exists())

	resp, err := handleAddProvider(svc, &ProviderSaveRequest{ID: "lenient", Body: config.Provider{}})
	require.NoError(t, err)
	require.Equal(t, config.Created, resp.Body.Result)
}

func TestModelRoutes(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.AddProvider("openai", testProvider("gpt-4o"))
	require.NoError(t, err)
	_, err = svc.AddProvider("anthropic", testProvider("claude"))
	require.NoError(t, err)

	testAPI := newTestAPI(t, svc, nil)

	resp := testAPI.Get("/api/v1/models")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Models []config.AvailableModel `json:"models"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Models, 2)
	require.Equal(t, "anthropic/claude", body.Models[0].Ref)
	require.Equal(t, "openai/gpt-4o", body.Models[1].Ref)
}

func TestModelRoutes_Empty(t *testing.T) {
	t.Parallel()

	testAPI := newTestAPI(t, newTestService(t), nil)

	resp := testAPI.Get("/api/v1/models")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"models": []}`, resp.Body.String())
}
