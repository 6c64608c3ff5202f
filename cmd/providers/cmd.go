package providers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

const (
	flagFormat         = "format"
	flagFile           = "file"
	flagSkipValidation = "skip-validation"
)

// NewCmd creates the parent providers command.
func NewCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	cobraCmd := &cobra.Command{
		Use:   "providers",
		Short: "Manage the model providers in the config file",
	}

	// Sub-commands for: clawconf providers.
	fns := []func(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error){
		NewAddCmd,    // add
		NewGetCmd,    // get
		NewListCmd,   // list
		NewModelsCmd, // models
		NewRemoveCmd, // remove
		NewUpdateCmd, // update
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

func addFormatFlag(cobraCmd *cobra.Command, format *cmd.OutputFormat) {
	*format = cmd.FormatText
	allowed := cmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		format,
		flagFormat,
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)
}
