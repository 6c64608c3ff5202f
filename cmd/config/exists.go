package config

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// ExistsCmd reports whether the config file exists.
// NOTE: Use NewExistsCmd to create an ExistsCmd.
type ExistsCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewExistsCmd creates the exists command.
func NewExistsCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ExistsCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "exists",
		Short: "Report whether the config file exists",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *ExistsCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.ExistsResult](cobraCmd.OutOrStdout(), c.format, &printer.ExistsPrinter{})
	if err != nil {
		return err
	}

	return handler.HandleResult(printer.ExistsResult{Path: svc.Path(), Exists: svc.Exists()})
}
