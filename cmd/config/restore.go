package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
)

const flagBackupFirst = "backup-first"

// RestoreCmd replaces the config file with a backup.
// NOTE: Use NewRestoreCmd to create a RestoreCmd.
type RestoreCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	backupFirst   bool
}

// NewRestoreCmd creates the restore command.
func NewRestoreCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &RestoreCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "restore <backup-path>",
		Short: "Replace the config file with a backup",
		Long:  "Replace the config file with the contents of a backup. The backup is copied as-is.",
		Example: `  # Restore a backup, keeping a copy of the current file first
  clawconf config restore --backup-first ~/.openclaw/backups/openclaw_backup_20250102_150405.json`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}

	cobraCmd.Flags().BoolVar(
		&c.backupFirst,
		flagBackupFirst,
		false,
		"Back up the current config file (when there is one) before restoring",
	)

	return cobraCmd, nil
}

func (c *RestoreCmd) run(cobraCmd *cobra.Command, args []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	if c.backupFirst && svc.Exists() {
		saved, err := svc.Backup()
		if err != nil {
			return fmt.Errorf("failed to back up the current config: %w", err)
		}
		_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Current config backed up to %s\n", saved)
	}

	if err := svc.Restore(args[0]); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Config restored from %s\n", args[0])

	return nil
}
