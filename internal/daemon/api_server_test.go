package daemon

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/errors"
)

const testProviderJSON = `{
  "baseUrl": "https://api.example.com/v1",
  "apiKey": "sk-test",
  "api": "openai-completions",
  "models": [{
    "id": "gpt-4o",
    "name": "GPT-4o",
    "reasoning": false,
    "input": ["text"],
    "cost": {"input": 1, "output": 2},
    "contextWindow": 128000,
    "maxTokens": 4096
  }]
}`

func TestNewAPIServer_AppliesDefaults(t *testing.T) {
	t.Parallel()

	deps := testAPIDependencies(t)

	server, err := NewAPIServer(deps)
	require.NoError(t, err)
	require.Equal(t, DefaultAPIShutdownTimeout(), server.shutdownTimeout)
	require.False(t, server.cors.Enabled)

	server, err = NewAPIServer(deps, nil, WithShutdownTimeout(10*time.Second), WithCORSEnabled(true), nil)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, server.shutdownTimeout)
	require.True(t, server.cors.Enabled)

	_, err = NewAPIServer(APIDependencies{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid dependencies for API server")
}

// Tests that build a handler are not parallel: Handler installs the package level Huma error hook.

func TestAPIServer_CORSIntegration(t *testing.T) {
	tests := []struct {
		name          string
		opts          []APIOption
		origin        string
		expectAllowed string
	}{
		{
			name:          "disabled",
			opts:          []APIOption{WithCORSEnabled(false)},
			origin:        "tauri://localhost",
			expectAllowed: "",
		},
		{
			name:          "default origins allow the webview",
			opts:          []APIOption{WithCORSEnabled(true)},
			origin:        "tauri://localhost",
			expectAllowed: "tauri://localhost",
		},
		{
			name:          "unknown origin rejected",
			opts:          []APIOption{WithCORSEnabled(true)},
			origin:        "https://evil.example.com",
			expectAllowed: "",
		},
		{
			name: "wildcard",
			opts: []APIOption{
				WithCORSEnabled(true),
				WithCORSAllowOrigins([]string{"http://localhost:1420", "*"}),
				WithCORSAllowCredentials(true),
			},
			origin:        "https://anything.example.com",
			expectAllowed: "*",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server, err := NewAPIServer(testAPIDependencies(t), tc.opts...)
			require.NoError(t, err)

			handler, err := server.Handler()
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/config", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.expectAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			if tc.expectAllowed == "*" {
				require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestAPIServer_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(t *testing.T, path string)
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{
			name:           "backup without config file",
			method:         http.MethodPost,
			target:         "/api/v1/backups",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "restore missing backup",
			method:         http.MethodPost,
			target:         "/api/v1/backups/restore",
			body:           `{"path": "/does/not/exist.json"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "restore with empty path fails request validation",
			method:         http.MethodPost,
			target:         "/api/v1/backups/restore",
			body:           `{"path": ""}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown provider",
			method:         http.MethodGet,
			target:         "/api/v1/providers/missing",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "update unknown provider",
			method:         http.MethodPut,
			target:         "/api/v1/providers/missing",
			body:           testProviderJSON,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "save document violating the schema",
			method:         http.MethodPut,
			target:         "/api/v1/config",
			body:           `{"models": 42}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "save malformed JSON",
			method:         http.MethodPut,
			target:         "/api/v1/config",
			body:           `{"models": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "read corrupt config file",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
				require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
			},
			method:         http.MethodGet,
			target:         "/api/v1/config",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "validate without config file",
			method:         http.MethodGet,
			target:         "/api/v1/config/validation",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := testConfigPath(t)
			if tc.setup != nil {
				tc.setup(t, path)
			}

			deps, err := NewAPIDependencies(hclog.NewNullLogger(), testService(t, path), &fakeWatcher{}, "127.0.0.1:0")
			require.NoError(t, err)
			server, err := NewAPIServer(deps)
			require.NoError(t, err)

			handler, err := server.Handler()
			require.NoError(t, err)

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())
			require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"bad request", fmt.Errorf("%w: bad body", errors.ErrBadRequest), http.StatusBadRequest},
		{"invalid provider", errors.NewErrInvalidProvider("Provider 'x' not found"), http.StatusBadRequest},
		{"config not found", errors.ErrConfigNotFound, http.StatusNotFound},
		{"file not found", errors.NewErrFileNotFound("/tmp/backup.json"), http.StatusNotFound},
		{"provider not found", fmt.Errorf("%w: x", errors.ErrProviderNotFound), http.StatusNotFound},
		{"config path not found", errors.ErrConfigPathNotFound, http.StatusInternalServerError},
		{"read", fmt.Errorf("%w: permission denied", errors.ErrRead), http.StatusInternalServerError},
		{"parse", fmt.Errorf("%w: unexpected EOF", errors.ErrParse), http.StatusInternalServerError},
		{"serialize", errors.ErrSerialize, http.StatusInternalServerError},
		{"write", errors.ErrWrite, http.StatusInternalServerError},
		{"io", errors.ErrIO, http.StatusInternalServerError},
		{"bad request wrapping parse", fmt.Errorf("%w: %w", errors.ErrBadRequest, errors.ErrParse), http.StatusBadRequest},
		{"unknown", fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			statusErr := mapError(hclog.NewNullLogger(), tc.err)
			require.Equal(t, tc.expectedStatus, statusErr.GetStatus())
		})
	}
}

func TestMapError_CoversDomainErrors(t *testing.T) {
	t.Parallel()

	for _, m := range errorMappings {
		t.Run(m.target.Error(), func(t *testing.T) {
			t.Parallel()

			statusErr := mapError(hclog.NewNullLogger(), fmt.Errorf("wrapped: %w", m.target))
			require.Equal(t, m.status, statusErr.GetStatus())
			require.NotEqual(t, "Internal server error", statusErr.Error())
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	handler := errorHandler(hclog.NewNullLogger())

	t.Run("no errors", func(t *testing.T) {
		t.Parallel()

		statusErr := handler(nil, http.StatusTeapot, "teapot")
		require.Equal(t, http.StatusTeapot, statusErr.GetStatus())
	})

	t.Run("validation errors keep their status", func(t *testing.T) {
		t.Parallel()

		statusErr := handler(nil, http.StatusUnprocessableEntity, "validation failed",
			&huma.ErrorDetail{Message: "expected length >= 1", Location: "body.path"},
			&huma.ErrorDetail{Message: "expected required property", Location: "body.api"},
		)
		require.Equal(t, http.StatusUnprocessableEntity, statusErr.GetStatus())
	})

	t.Run("domain errors are mapped", func(t *testing.T) {
		t.Parallel()

		statusErr := handler(nil, http.StatusInternalServerError, "unexpected error occurred", errors.ErrConfigNotFound)
		require.Equal(t, http.StatusNotFound, statusErr.GetStatus())
	})

	t.Run("joined domain errors are mapped", func(t *testing.T) {
		t.Parallel()

		statusErr := handler(nil, http.StatusInternalServerError, "unexpected error occurred",
			fmt.Errorf("first"), errors.NewErrInvalidProvider("bad"),
		)
		require.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
	})
}

func TestCORSOptions(t *testing.T) {
	t.Parallel()

	t.Run("origins are trimmed", func(t *testing.T) {
		t.Parallel()

		cfg := CORSConfig{
			AllowOrigins:     []string{" tauri://localhost ", "http://localhost:1420"},
			AllowCredentials: true,
			MaxAge:           time.Minute,
		}

		opts := corsOptions(cfg)
		require.Equal(t, []string{"tauri://localhost", "http://localhost:1420"}, opts.AllowedOrigins)
		require.True(t, opts.AllowCredentials)
		require.Equal(t, 60, opts.MaxAge)
		require.Equal(t, " tauri://localhost ", cfg.AllowOrigins[0])
	})

	t.Run("wildcard disables credentials", func(t *testing.T) {
		t.Parallel()

		origins := []string{"http://localhost:1420", "*"}
		opts := corsOptions(CORSConfig{AllowOrigins: origins, AllowCredentials: true})
		require.Equal(t, []string{"*"}, opts.AllowedOrigins)
		require.False(t, opts.AllowCredentials)
		require.Equal(t, []string{"http://localhost:1420", "*"}, origins)
	})
}
