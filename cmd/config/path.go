package config

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// PathCmd prints the location of the config file.
// NOTE: Use NewPathCmd to create a PathCmd.
type PathCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewPathCmd creates the path command.
func NewPathCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &PathCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *PathCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.PathResult](cobraCmd.OutOrStdout(), c.format, &printer.PathPrinter{})
	if err != nil {
		return err
	}

	return handler.HandleResult(printer.PathResult{Path: svc.Path()})
}
