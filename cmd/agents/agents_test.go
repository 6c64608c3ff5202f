package agents

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/cmd"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
)

func readDefaults(t *testing.T, env *testEnv) clawconfig.AgentsDefaults {
	t.Helper()

	data, err := os.ReadFile(env.path)
	require.NoError(t, err)

	cfg, err := clawconfig.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, cfg.Agents)

	return cfg.Agents.Defaults
}

func TestNewCmd_SubCommands(t *testing.T) {
	t.Parallel()

	c, err := NewCmd(&cmd.BaseCmd{})
	require.NoError(t, err)

	var names []string
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}

	require.ElementsMatch(t, []string{"get", "set"}, names)
}

func TestGetCmd_NoDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, NewGetCmd, "")
	require.NoError(t, err)
	require.Equal(t, "No agent defaults configured\n", out)

	out, err = env.run(t, NewGetCmd, "", "--format", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"result":{"defaults":null}}`, out)
}

func TestSetCmd_FlagsStartFromBuiltInDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, NewSetCmd, "", "--primary", "openai/gpt-4o", "--fast", "openai/gpt-4o-mini")
	require.NoError(t, err)
	require.Equal(t, "✓ Agent defaults saved to "+env.path+"\n", out)

	d := readDefaults(t, env)
	require.NotNil(t, d.Model)
	require.Equal(t, "openai/gpt-4o", d.Model.Primary)
	require.Equal(t, "openai/gpt-4o-mini", *d.Model.Fast)
	require.Nil(t, d.Model.Balanced)
	require.Equal(t, clawconfig.DefaultMaxConcurrent, *d.MaxConcurrent)
	require.Equal(t, clawconfig.DefaultSubagentsMaxConcurrent, d.Subagents.MaxConcurrent)

	out, err = env.run(t, NewGetCmd, "")
	require.NoError(t, err)
	require.Contains(t, out, "Primary model: openai/gpt-4o")
	require.Contains(t, out, "Max concurrent: 6")
}

func TestSetCmd_FlagsOverlayStoredDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.writeConfig(t, `{
  "agents": {
    "defaults": {
      "model": {"primary": "openai/gpt-4o", "powerful": "anthropic/claude-opus"},
      "models": {"openai/gpt-4o": {"alias": "gpt"}},
      "workspace": "/work",
      "maxConcurrent": 3
    }
  }
}`)

	_, err := env.run(t, NewSetCmd, "", "--max-concurrent", "8", "--subagents-max-concurrent", "16", "--workspace", "")
	require.NoError(t, err)

	d := readDefaults(t, env)
	require.Equal(t, "openai/gpt-4o", d.Model.Primary)
	require.Equal(t, "anthropic/claude-opus", *d.Model.Powerful)
	require.Equal(t, uint32(8), *d.MaxConcurrent)
	require.Equal(t, uint32(16), d.Subagents.MaxConcurrent)
	require.Nil(t, d.Workspace, "an empty value clears the setting")
	require.Equal(t, "gpt", d.Models["openai/gpt-4o"].Alias)
}

func TestSetCmd_File(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.run(t, NewSetCmd, `
model:
  primary: anthropic/claude-sonnet
maxConcurrent: 2
`, "--file", "-")
	require.NoError(t, err)

	d := readDefaults(t, env)
	require.Equal(t, "anthropic/claude-sonnet", d.Model.Primary)
	require.Equal(t, uint32(2), *d.MaxConcurrent)
	require.Nil(t, d.Subagents, "a document replaces the defaults outright")

	out, err := env.run(t, NewGetCmd, "", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Result struct {
			Defaults clawconfig.AgentsDefaults `json:"defaults"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, "anthropic/claude-sonnet", payload.Result.Defaults.Model.Primary)
}

func TestSetCmd_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains string
	}{
		{
			name:     "no values",
			contains: "either --file or at least one value flag must be provided",
		},
		{
			name:     "missing primary model",
			args:     []string{"--fast", "openai/gpt-4o-mini"},
			contains: "primary model cannot be empty",
		},
		{
			name:     "zero concurrency",
			args:     []string{"--primary", "openai/gpt-4o", "--max-concurrent", "0"},
			contains: "max concurrent must be greater than 0",
		},
		{
			name:     "file and flags",
			args:     []string{"--file", "-", "--primary", "openai/gpt-4o"},
			contains: "if any flags in the group",
		},
		{
			name:     "bad document",
			stdin:    "model: [",
			args:     []string{"--file", "-"},
			contains: "failed to parse agent defaults YAML",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)

			_, err := env.run(t, NewSetCmd, tc.stdin, tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.contains)
			require.NoFileExists(t, env.path)
		})
	}
}

func TestSetCmd_SkipValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.run(t, NewSetCmd, "", "--fast", "openai/gpt-4o-mini", "--skip-validation")
	require.NoError(t, err)

	d := readDefaults(t, env)
	require.Empty(t, d.Model.Primary)
}
