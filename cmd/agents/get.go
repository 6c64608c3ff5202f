package agents

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// GetCmd prints the agent defaults.
// NOTE: Use NewGetCmd to create a GetCmd.
type GetCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewGetCmd creates the get command for agent defaults.
func NewGetCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &GetCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		format:        cmd.FormatText,
	}

	cobraCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the agent defaults",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		&c.format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCmd, nil
}

func (c *GetCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.AgentsDefaultsResult](
		cobraCmd.OutOrStdout(),
		c.format,
		&printer.AgentsDefaultsPrinter{},
	)
	if err != nil {
		return err
	}

	defaults, err := svc.AgentsDefaults()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(printer.AgentsDefaultsResult{Defaults: defaults})
}
