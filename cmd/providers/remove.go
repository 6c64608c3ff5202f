package providers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
)

// RemoveCmd deletes a provider.
// NOTE: Use NewRemoveCmd to create a RemoveCmd.
type RemoveCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
}

// NewRemoveCmd creates the remove command for providers.
func NewRemoveCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &RemoveCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a provider",
		Long:  "Remove a provider. Removing a provider that is not configured leaves the config file untouched.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	return cobraCmd, nil
}

func (c *RemoveCmd) run(cobraCmd *cobra.Command, args []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	id := args[0]
	result, err := svc.DeleteProvider(id)
	if err != nil {
		return err
	}

	if result == clawconfig.Noop {
		_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "Provider '%s' is not configured, nothing to remove\n", id)
		return nil
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Provider '%s' removed (operation: %s)\n", id, result)

	return nil
}
