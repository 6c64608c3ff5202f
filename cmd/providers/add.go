package providers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

// AddCmd stores a provider, replacing any provider already stored under the same ID.
// NOTE: Use NewAddCmd to create an AddCmd.
type AddCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	input         providerInput
}

// NewAddCmd creates the add command for providers.
func NewAddCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &AddCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		input:         providerInput{stdin: opts.Stdin},
	}

	cobraCmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a provider, replacing one already stored under the same ID",
		Long: `Add a provider, replacing one already stored under the same ID.

The provider is checked before saving: it needs a base URL, an API key, an API type
and at least one model. Use --skip-validation to save it regardless.`,
		Example: `  clawconf providers add openai --file openai.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE:    c.run,
	}

	c.input.addFlags(cobraCmd)

	return cobraCmd, nil
}

func (c *AddCmd) run(cobraCmd *cobra.Command, args []string) error {
	id := args[0]

	p, err := c.input.read(id)
	if err != nil {
		return err
	}

	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	result, err := svc.AddProvider(id, p)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Provider '%s' saved (operation: %s)\n", id, result)

	return nil
}
