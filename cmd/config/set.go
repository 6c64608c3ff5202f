package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
)

const flagFile = "file"

// SetCmd saves top-level sections of the config document.
// NOTE: Use NewSetCmd to create a SetCmd.
type SetCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	stdin         io.Reader
	file          string
}

// NewSetCmd creates the set command for the config document.
func NewSetCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SetCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		stdin:         opts.Stdin,
	}

	cobraCmd := &cobra.Command{
		Use:   "set",
		Short: "Save top-level sections of the config document",
		Long: `Save top-level sections of the config document.

The input is a (partial) openclaw.json document. Every top-level section it contains
replaces the stored section, all other sections are kept as they are.`,
		Example: `  # Replace the models section
  clawconf config set --file models.json

  # Read the document from standard input
  cat partial.json | clawconf config set`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cobraCmd.Flags().StringVar(&c.file, flagFile, cmd.StdinPath, "Document to save, '-' reads standard input")

	return cobraCmd, nil
}

func (c *SetCmd) run(cobraCmd *cobra.Command, _ []string) error {
	data, err := cmd.ReadInput(c.file, c.stdin)
	if err != nil {
		return err
	}

	cfg, err := clawconfig.Decode(data)
	if err != nil {
		return err
	}

	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	if err := svc.Write(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(
		cobraCmd.OutOrStdout(),
		"✓ Config saved to %s (sections: %s)\n",
		svc.Path(),
		strings.Join(cfg.Sections(), ", "),
	)

	return nil
}
