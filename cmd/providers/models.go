package providers

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/cmd/output"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/printer"
)

// ModelsCmd lists every model offered by the configured providers.
// NOTE: Use NewModelsCmd to create a ModelsCmd.
type ModelsCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	printer       output.Printer[clawconfig.AvailableModel]
	format        cmd.OutputFormat
}

// NewModelsCmd creates the models command.
func NewModelsCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	p := &printer.ModelPrinter{}
	p.SetHeader(func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "Available models (%d):\n", count)
	})

	c := &ModelsCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		printer:       p,
	}

	cobraCmd := &cobra.Command{
		Use:   "models",
		Short: "List the models offered by the configured providers",
		Long:  "List the models offered by the configured providers as 'provider/model' references, ordered by reference.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *ModelsCmd) run(cobraCmd *cobra.Command, _ []string) error {
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

	return handler.HandleResults(clawconfig.AvailableModels(providers)...)
}
