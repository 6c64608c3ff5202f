package providers

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// GetCmd prints a single provider.
// NOTE: Use NewGetCmd to create a GetCmd.
type GetCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewGetCmd creates the get command for providers.
func NewGetCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &GetCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a single provider",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *GetCmd) run(cobraCmd *cobra.Command, args []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.ProviderResult](
		cobraCmd.OutOrStdout(),
		c.format,
		&printer.ProviderPrinter{},
	)
	if err != nil {
		return err
	}

	id := args[0]
	p, err := svc.Provider(id)
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(printer.ProviderResult{ID: id, Provider: p})
}
