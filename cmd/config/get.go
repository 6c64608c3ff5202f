package config

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/cmd/output"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/printer"
)

// GetCmd prints the config document.
// NOTE: Use NewGetCmd to create a GetCmd.
type GetCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	printer       output.Printer[clawconfig.Config]
	format        cmd.OutputFormat
}

// NewGetCmd creates the get command for the config document.
func NewGetCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &GetCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		printer:       &printer.ConfigPrinter{},
	}

	cobraCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the config document",
		Long:  "Print the config document. A missing config file prints an empty document.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *GetCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler(cobraCmd.OutOrStdout(), c.format, c.printer)
	if err != nil {
		return err
	}

	cfg, err := svc.Read()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(cfg)
}
