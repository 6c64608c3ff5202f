package config

import (
	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// BackupCmd copies the config file into the backup directory.
// NOTE: Use NewBackupCmd to create a BackupCmd.
type BackupCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewBackupCmd creates the backup command.
func NewBackupCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &BackupCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the config file",
		Long: "Copy the config file into the backup directory under a timestamped name " +
			"(openclaw_backup_YYYYMMDD_HHMMSS.json) and print the backup's path.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *BackupCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.PathResult](cobraCmd.OutOrStdout(), c.format, &printer.PathPrinter{})
	if err != nil {
		return err
	}

	path, err := svc.Backup()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(printer.PathResult{Path: path})
}
