package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "provider.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"from": "file"}`), 0o600))

	tests := []struct {
		name     string
		path     string
		stdin    string
		expected string
		errMsg   string
	}{
		{
			name:     "file",
			path:     path,
			expected: `{"from": "file"}`,
		},
		{
			name:     "stdin",
			path:     "-",
			stdin:    `{"from": "stdin"}`,
			expected: `{"from": "stdin"}`,
		},
		{
			name:   "empty path",
			path:   "  ",
			errMsg: "input file cannot be empty",
		},
		{
			name:   "missing file",
			path:   filepath.Join(t.TempDir(), "missing.json"),
			errMsg: "failed to read input file",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data, err := ReadInput(tc.path, strings.NewReader(tc.stdin))
			if tc.errMsg != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(data))
		})
	}

	_, err := ReadInput("-", nil)
	require.EqualError(t, err, "standard input is not available")
}
