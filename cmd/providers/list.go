package providers

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/printer"
)

// ListCmd lists the configured providers.
// NOTE: Use NewListCmd to create a ListCmd.
type ListCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	printer       output.Printer[printer.ProviderResult]
	format        cmd.OutputFormat
}

// NewListCmd creates the list command for providers.
func NewListCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	p := &printer.ProviderPrinter{}
	p.SetHeader(func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "Configured providers (%d):\n\n", count)
	})

	c := &ListCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		printer:       p,
	}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured providers, ordered by ID",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *ListCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler(cobraCmd.OutOrStdout(), c.format, c.printer)
	if err != nil {
		return err
	}

	providers, err := svc.Providers()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResults(printer.ProviderResults(providers)...)
}
