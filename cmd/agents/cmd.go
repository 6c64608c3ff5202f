package agents

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

// NewCmd creates the parent agents command.
func NewCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	cobraCmd := &cobra.Command{
		Use:   "agents",
		Short: "Manage the agent defaults in the config file",
	}

	// Sub-commands for: clawconf agents.
	fns := []func(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error){
		NewGetCmd, // get
		NewSetCmd, // set
	}

	for _, fn := range fns {
		tempCmd, err := fn(baseCmd, opt...)
		if err != nil {
			return nil, err
		}
		cobraCmd.AddCommand(tempCmd)
	}

	return cobraCmd, nil
}
