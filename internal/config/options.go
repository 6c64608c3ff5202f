package config

import (
	"fmt"
	"strings"
	"time"
)

// ServiceOptions contains optional configuration for the persistence Service.
// NewServiceOptions should be used to create instances of ServiceOptions.
type ServiceOptions struct {
	// ConfigPath is the location of openclaw.json.
	// When empty, the default location under the user's home directory is used.
	ConfigPath string

	// BackupDir is where backups are written.
	// When empty, a 'backups' directory next to the config file is used.
	BackupDir string

	// BackupRetention is the number of most recent backups to keep; zero keeps every backup.
	BackupRetention int

	// Clock supplies the time used to name backups.
	Clock func() time.Time
}

// ServiceOption defines a functional option for configuring ServiceOptions.
type ServiceOption func(*ServiceOptions) error

// NewServiceOptions creates ServiceOptions with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewServiceOptions(opt ...ServiceOption) (ServiceOptions, error) {
	options := ServiceOptions{
		Clock: time.Now,
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&options); err != nil {
			return ServiceOptions{}, err
		}
	}

	return options, nil
}

// WithConfigPath sets the location of openclaw.json.
func WithConfigPath(path string) ServiceOption {
	return func(o *ServiceOptions) error {
		o.ConfigPath = strings.TrimSpace(path)
		return nil
	}
}

// WithBackupDir sets the directory backups are written to.
func WithBackupDir(dir string) ServiceOption {
	return func(o *ServiceOptions) error {
		o.BackupDir = strings.TrimSpace(dir)
		return nil
	}
}

// WithBackupRetention sets how many of the most recent backups are kept after each backup.
func WithBackupRetention(n int) ServiceOption {
	return func(o *ServiceOptions) error {
		if n < 0 {
			return fmt.Errorf("backup retention cannot be negative, got %d", n)
		}
		o.BackupRetention = n
		return nil
	}
}

// WithClock sets the time source used for backup names.
func WithClock(clock func() time.Time) ServiceOption {
	return func(o *ServiceOptions) error {
		if clock == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		o.Clock = clock
		return nil
	}
}
