package cmd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/flags"
	"github.com/clawdesk/clawconf/internal/settings"
)

// ServiceLoader opens the config persistence service a command operates on.
type ServiceLoader interface {
	LoadService(logger hclog.Logger) (contracts.ConfigService, error)
}

// ServiceLoaderFunc adapts an ordinary function to a ServiceLoader.
type ServiceLoaderFunc func(logger hclog.Logger) (contracts.ConfigService, error)

// LoadService calls f(logger).
func (f ServiceLoaderFunc) LoadService(logger hclog.Logger) (contracts.ConfigService, error) {
	return f(logger)
}

// DefaultServiceLoader opens the config file named by the global flags,
// applying the backup settings from the settings file.
type DefaultServiceLoader struct{}

// LoadService implements ServiceLoader.
func (DefaultServiceLoader) LoadService(logger hclog.Logger) (contracts.ConfigService, error) {
	s, err := settings.Load(flags.SettingsFile)
	if err != nil {
		return nil, err
	}

	svc, err := config.NewService(
		logger,
		config.WithConfigPath(flags.ConfigFile),
		config.WithBackupDir(s.BackupDir()),
		config.WithBackupRetention(s.BackupRetention()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	return svc, nil
}
