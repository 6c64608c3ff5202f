//go:build docsgen_cli
// +build docsgen_cli

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra/doc"

	"github.com/clawdesk/clawconf/cmd"
	internalcmd "github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/perms"
)

// commandsDir receives one markdown page per command, relative to the repository root.
const commandsDir = "./docs/commands/"

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "clawconf.docsgen",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	if err := run(commandsDir); err != nil {
		logger.Error("CLI docs generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("CLI docs generated", "path", commandsDir)
}

// run regenerates dir from scratch so pages for removed commands disappear.
func run(dir string) error {
	root, err := cmd.NewRootCmd(&internalcmd.BaseCmd{})
	if err != nil {
		return fmt.Errorf("failed to create root command: %w", err)
	}

	// Without the generation date, pages only change when commands do.
	root.DisableAutoGenTag = true

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear '%s': %w", dir, err)
	}
	if err := os.MkdirAll(dir, perms.RegularDir); err != nil {
		return fmt.Errorf("failed to create '%s': %w", dir, err)
	}

	return doc.GenMarkdownTree(root, dir)
}
