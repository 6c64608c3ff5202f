package providers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
)

// testEnv is a config file in a temporary directory and the options that point commands at it.
type testEnv struct {
	path      string
	backupDir string
	opts      []options.CmdOption
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		path:      filepath.Join(dir, "openclaw.json"),
		backupDir: filepath.Join(dir, "backups"),
	}

	loader := cmd.ServiceLoaderFunc(func(logger hclog.Logger) (contracts.ConfigService, error) {
		return clawconfig.NewService(
			logger,
			clawconfig.WithConfigPath(env.path),
			clawconfig.WithBackupDir(env.backupDir),
		)
	})
	env.opts = []options.CmdOption{options.WithServiceLoader(loader)}

	return env
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.path, []byte(content), 0o600))
}

// run executes the command built by fn with args and returns its output.
func (e *testEnv) run(
	t *testing.T,
	fn func(*cmd.BaseCmd, ...options.CmdOption) (*cobra.Command, error),
	stdin string,
	args ...string,
) (string, error) {
	t.Helper()

	base := &cmd.BaseCmd{}
	base.SetLogger(hclog.NewNullLogger())

	opts := append([]options.CmdOption{options.WithStdin(strings.NewReader(stdin))}, e.opts...)
	c, err := fn(base, opts...)
	require.NoError(t, err)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)

	err = c.Execute()
	return out.String(), err
}
