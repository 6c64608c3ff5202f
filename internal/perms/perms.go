// Package perms provides the file and directory modes used when clawconf writes
// the OpenClaw configuration, its backups and its own settings.
package perms

import "os"

const (
	// ConfigFile is the mode for openclaw.json and its backups.
	// The document can hold provider API keys and gateway tokens, so only the owner may read it.
	ConfigFile os.FileMode = 0o600

	// RegularFile is the mode for non-sensitive files such as clawconf settings and logs.
	RegularFile os.FileMode = 0o644
)

const (
	// ConfigDir is the mode used when creating the OpenClaw config directory and its backups directory.
	ConfigDir os.FileMode = 0o700

	// RegularDir is the mode for clawconf's own settings directory.
	RegularDir os.FileMode = 0o755
)
