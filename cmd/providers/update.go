package providers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

// UpdateCmd replaces an existing provider.
// NOTE: Use NewUpdateCmd to create an UpdateCmd.
type UpdateCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	input         providerInput
}

// NewUpdateCmd creates the update command for providers.
func NewUpdateCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &UpdateCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		input:         providerInput{stdin: opts.Stdin},
	}

	cobraCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing provider",
		Long:  "Replace an existing provider. Fails when no provider is stored under the ID.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	c.input.addFlags(cobraCmd)

	return cobraCmd, nil
}

func (c *UpdateCmd) run(cobraCmd *cobra.Command, args []string) error {
	id := args[0]

	p, err := c.input.read(id)
	if err != nil {
		return err
	}

	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	if err := svc.UpdateProvider(id, p); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Provider '%s' updated\n", id)

	return nil
}
