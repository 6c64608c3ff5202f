package contracts

import (
	"context"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/watch"
)

// ConfigStore provides access to the persisted openclaw.json document.
type ConfigStore interface {
	// Path returns the location of the config file.
	Path() string

	// Exists reports whether the config file is present.
	Exists() bool

	// Read returns the current document, or an empty one when the file is missing.
	Read() (config.Config, error)

	// Write merges cfg over the current document and persists the result.
	Write(cfg config.Config) error

	// Validate checks the config file against the document schema.
	Validate() ([]config.ValidationIssue, error)
}

// BackupManager creates, lists and restores backups of the config file.
type BackupManager interface {
	// Backup copies the config file into the backup directory and returns the backup's path.
	Backup() (string, error)

	// ListBackups returns the existing backups, newest first.
	ListBackups() ([]config.BackupInfo, error)

	// Restore replaces the config file with the backup at path.
	Restore(path string) error
}

// ProviderStore manages the model providers section of the document.
type ProviderStore interface {
	Providers() (map[string]config.Provider, error)
	Provider(id string) (config.Provider, error)
	AddProvider(id string, p config.Provider) (config.UpsertResult, error)
	UpdateProvider(id string, p config.Provider) error
	DeleteProvider(id string) (config.UpsertResult, error)
}

// AgentsStore manages the agent defaults section of the document.
type AgentsStore interface {
	// AgentsDefaults returns the agent defaults, or nil when the document has none.
	AgentsDefaults() (*config.AgentsDefaults, error)

	// SaveAgentsDefaults replaces the agent defaults.
	SaveAgentsDefaults(defaults config.AgentsDefaults) error
}

// ConfigService is the full set of operations offered over the config file.
type ConfigService interface {
	ConfigStore
	BackupManager
	ProviderStore
	AgentsStore
}

// ChangeNotifier delivers change events for the config file.
type ChangeNotifier interface {
	// Subscribe returns a channel of change events and a function that ends the subscription.
	Subscribe() (<-chan watch.Event, func())
}

// ChangeWatcher is a ChangeNotifier that watches the config file until its context ends.
type ChangeWatcher interface {
	ChangeNotifier

	// Run watches for changes and blocks until ctx is canceled or watching fails.
	Run(ctx context.Context) error
}

var (
	_ ConfigService  = (*config.Service)(nil)
	_ ChangeNotifier = (*watch.Watcher)(nil)
	_ ChangeWatcher  = (*watch.Watcher)(nil)
)
