package config

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

// BackupsCmd lists existing backups.
// NOTE: Use NewBackupsCmd to create a BackupsCmd.
type BackupsCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	printer       output.Printer[clawconfig.BackupInfo]
	format        cmd.OutputFormat
}

// NewBackupsCmd creates the backups command.
func NewBackupsCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	p := &printer.BackupPrinter{}
	p.SetHeader(func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "Backups (%d, newest first):\n", count)
	})

	c := &BackupsCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		printer:       p,
	}

	cobraCmd := &cobra.Command{
		Use:   "backups",
		Short: "List backups of the config file, newest first",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *BackupsCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler(cobraCmd.OutOrStdout(), c.format, c.printer)
	if err != nil {
		return err
	}

	backups, err := svc.ListBackups()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResults(backups...)
}
