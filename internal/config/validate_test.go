package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvider_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		provider    Provider
		expectedErr []string
	}{
		{
			name:     "valid",
			provider: testProvider("m"),
		},
		{
			name:     "empty",
			provider: Provider{},
			expectedErr: []string{
				"base URL cannot be empty",
				"API key cannot be empty",
				"API type cannot be empty",
				"at least one model must be configured",
			},
		},
		{
			name: "whitespace key",
			provider: func() Provider {
				p := testProvider("m")
				p.APIKey = ptr("  ")
				return p
			}(),
			expectedErr: []string{"API key cannot be empty"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.provider.Validate()
			if len(tc.expectedErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, msg := range tc.expectedErr {
				require.ErrorContains(t, err, msg)
			}
		})
	}
}

func TestProvider_HasAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      *string
		expected bool
	}{
		{name: "nil", key: nil, expected: false},
		{name: "empty", key: ptr(""), expected: false},
		{name: "placeholder", key: ptr("YOUR_API_KEY_HERE"), expected: false},
		{name: "set", key: ptr("sk-123"), expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, Provider{APIKey: tc.key}.HasAPIKey())
		})
	}
}

func TestAgentsDefaults_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		defaults    AgentsDefaults
		expectedErr []string
	}{
		{
			name: "valid",
			defaults: AgentsDefaults{
				Model:         &ModelConfig{Primary: "openai/gpt-4o"},
				MaxConcurrent: ptr(uint32(1)),
				Subagents:     &SubagentsConfig{MaxConcurrent: 1},
			},
		},
		{
			name:        "defaults need a primary model",
			defaults:    DefaultAgentsDefaults(),
			expectedErr: []string{"primary model cannot be empty"},
		},
		{
			name: "zero limits",
			defaults: AgentsDefaults{
				Model:         &ModelConfig{Primary: "a/b"},
				MaxConcurrent: ptr(uint32(0)),
				Subagents:     &SubagentsConfig{MaxConcurrent: 0},
			},
			expectedErr: []string{
				"max concurrent must be greater than 0",
				"subagents max concurrent must be greater than 0",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.defaults.Validate()
			if len(tc.expectedErr) == 0 {
				require.NoError(t, err)
				return
			}

			for _, msg := range tc.expectedErr {
				require.ErrorContains(t, err, msg)
			}
		})
	}
}
