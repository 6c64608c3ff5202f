package cmd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/flags"
)

// BaseCmd carries state shared by every clawconf command.
type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// HasLogger reports whether a logger has been set or built.
func (c *BaseCmd) HasLogger() bool {
	return c.logger != nil
}

// Logger returns the current logger for the command.
// When none has been set, one is built from the global log flags, falling back to discarding output.
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	logger, err := NewLogger(flags.LogLevel, flags.LogPath)
	if err != nil {
		logger = hclog.NewNullLogger()
	}
	c.logger = logger

	return c.logger
}

// LoadService opens the config persistence service using loader.
func (c *BaseCmd) LoadService(loader ServiceLoader) (contracts.ConfigService, error) {
	if loader == nil {
		return nil, fmt.Errorf("service loader cannot be nil")
	}

	return loader.LoadService(c.Logger())
}
