// Package cmd wires the clawconf command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/cmd/agents"
	"github.com/clawdesk/clawconf/cmd/config"
	"github.com/clawdesk/clawconf/cmd/providers"
	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/flags"
)

// RootCmd represents the top level 'clawconf' command.
type RootCmd struct {
	*cmd.BaseCmd
}

// Execute builds the command tree and runs it against os.Args, exiting with status 1 on failure.
// Cobra has already reported any error returned by a command.
func Execute() {
	rootCmd, err := NewRootCmd(&cmd.BaseCmd{})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error creating root command: %s\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the root command with every sub-command attached.
func NewRootCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	c := &RootCmd{
		BaseCmd: baseCmd,
	}

	rootCmd := &cobra.Command{
		Use:               "clawconf <command> [args]",
		Short:             "Edit and serve the OpenClaw configuration file",
		Long:              c.longDescription(),
		SilenceUsage:      true,
		Version:           cmd.Version(),
		PersistentPreRunE: c.configureLogger,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	fns := []func(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error){
		NewDaemonCmd,     // daemon
		config.NewCmd,    // config
		providers.NewCmd, // providers
		agents.NewCmd,    // agents
	}

	for _, fn := range fns {
		tempCmd, err := fn(baseCmd, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `clawconf reads and writes ~/.openclaw/openclaw.json, the configuration file of the
OpenClaw agent runtime. Use it directly, or run 'clawconf daemon' to serve the same
operations over a local HTTP API for the desktop editor.`
}

// configureLogger replaces the command logger with one built from the parsed global flags.
// A logger that was set explicitly (e.g. by tests) is kept.
func (c *RootCmd) configureLogger(_ *cobra.Command, _ []string) error {
	if c.BaseCmd == nil {
		return nil
	}

	logger, err := cmd.NewLogger(flags.LogLevel, flags.LogPath)
	if err != nil {
		return err
	}

	if !c.HasLogger() {
		c.SetLogger(logger)
	}

	return nil
}
