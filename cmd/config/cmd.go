package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

// flagFormat is shared by every command that renders results.
const flagFormat = "format"

// NewCmd creates the parent config command.
func NewCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Read, write, validate and back up the OpenClaw config file",
	}

	// Sub-commands for: clawconf config.
	fns := []func(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error){
		NewBackupCmd,   // backup
		NewBackupsCmd,  // backups
		NewExistsCmd,   // exists
		NewGetCmd,      // get
		NewPathCmd,     // path
		NewRestoreCmd,  // restore
		NewSetCmd,      // set
		NewValidateCmd, // validate
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

// addFormatFlag registers the --format flag, defaulting to text.
func addFormatFlag(cobraCmd *cobra.Command, format *cmd.OutputFormat) {
	*format = cmd.FormatText
	allowed := cmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		format,
		flagFormat,
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)
}
