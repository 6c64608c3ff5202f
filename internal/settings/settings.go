// Package settings loads clawconf's own settings file, a TOML document under the user's config directory.
// The settings only affect clawconf (daemon address, CORS, backup location); they never touch openclaw.json.
package settings

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultAddr is the address the daemon binds when the settings file does not name one.
// The daemon serves the local editor only, so it binds loopback.
const DefaultAddr = "127.0.0.1:18790"

// ErrSettingsLoadFailed is returned when the settings file exists but cannot be used.
var ErrSettingsLoadFailed = stdErrors.New("failed to load settings")

// Settings is the root of the settings file.
type Settings struct {
	// Daemon configures 'clawconf daemon'.
	Daemon *DaemonSection `json:"daemon,omitempty" toml:"daemon,omitempty" yaml:"daemon,omitempty"`

	// Backups configures where backups go and how many are kept.
	Backups *BackupsSection `json:"backups,omitempty" toml:"backups,omitempty" yaml:"backups,omitempty"`
}

// DaemonSection contains API server settings.
type DaemonSection struct {
	// Addr is the address to bind the API server (e.g. "127.0.0.1:18790").
	// Maps to CLI flag --addr
	Addr *string `json:"addr,omitempty" toml:"addr,omitempty" yaml:"addr,omitempty"`

	// ShutdownTimeout bounds graceful shutdown of the API server.
	// Maps to CLI flag --timeout-shutdown
	ShutdownTimeout *Duration `json:"shutdownTimeout,omitempty" toml:"shutdown_timeout,omitempty" yaml:"shutdown_timeout,omitempty"`

	// CORS configures cross-origin requests from the editor's webview.
	CORS *CORSSection `json:"cors,omitempty" toml:"cors,omitempty" yaml:"cors,omitempty"`
}

// CORSSection contains Cross-Origin Resource Sharing (CORS) settings.
type CORSSection struct {
	// Enable CORS support
	// Maps to CLI flag --cors-enable
	Enable *bool `json:"enable,omitempty" toml:"enable,omitempty" yaml:"enable,omitempty"`

	// Allowed origins for CORS requests
	// Maps to CLI flag --cors-origins
	Origins []string `json:"allowOrigins,omitempty" toml:"allow_origins,omitempty" yaml:"allow_origins,omitempty"`

	// Allowed HTTP methods for CORS requests
	// Maps to CLI flag --cors-methods
	Methods []string `json:"allowMethods,omitempty" toml:"allow_methods,omitempty" yaml:"allow_methods,omitempty"`

	// Allowed headers for CORS requests
	// Maps to CLI flag --cors-headers
	Headers []string `json:"allowHeaders,omitempty" toml:"allow_headers,omitempty" yaml:"allow_headers,omitempty"`

	// Headers exposed to the client
	// Maps to CLI flag --cors-expose-headers
	ExposeHeaders []string `json:"exposeHeaders,omitempty" toml:"expose_headers,omitempty" yaml:"expose_headers,omitempty"`

	// Allow credentials in CORS requests
	// Maps to CLI flag --cors-credentials
	Credentials *bool `json:"allowCredentials,omitempty" toml:"allow_credentials,omitempty" yaml:"allow_credentials,omitempty"`

	// Maximum age for CORS preflight cache
	// Maps to CLI flag --cors-max-age
	MaxAge *Duration `json:"maxAge,omitempty" toml:"max_age,omitempty" yaml:"max_age,omitempty"`
}

// BackupsSection contains backup settings.
type BackupsSection struct {
	// Dir overrides the backup directory, which defaults to 'backups' next to openclaw.json.
	Dir *string `json:"dir,omitempty" toml:"dir,omitempty" yaml:"dir,omitempty"`

	// Retain is how many of the most recent backups are kept; zero (or unset) keeps all of them.
	Retain *int `json:"retain,omitempty" toml:"retain,omitempty" yaml:"retain,omitempty"`
}

// Duration is a time.Duration that is written to and read from settings files as text, e.g. "5s".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// String returns the duration in Go duration syntax.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Load reads the settings file at path.
// A missing file is not an error: empty settings are returned and every value takes its default.
func Load(path string) (Settings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Settings{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("%w: failed to stat settings file (%s): %w", ErrSettingsLoadFailed, path, err)
	}

	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: failed to decode settings file (%s): %w", ErrSettingsLoadFailed, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf(
			"%w: unknown keys in settings file (%s): %s",
			ErrSettingsLoadFailed,
			path,
			strings.Join(keys, ", "),
		)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: invalid settings file (%s): %w", ErrSettingsLoadFailed, path, err)
	}

	return s, nil
}

// Validate checks every configured value.
func (s Settings) Validate() error {
	var errs []error

	if s.Daemon != nil {
		if s.Daemon.Addr != nil {
			if err := ValidateAddr(*s.Daemon.Addr); err != nil {
				errs = append(errs, fmt.Errorf("daemon.addr: %w", err))
			}
		}
		if s.Daemon.ShutdownTimeout != nil && *s.Daemon.ShutdownTimeout <= 0 {
			errs = append(errs, fmt.Errorf("daemon.shutdown_timeout: must be positive, got %s", s.Daemon.ShutdownTimeout))
		}
		if c := s.Daemon.CORS; c != nil {
			if c.MaxAge != nil && *c.MaxAge < 0 {
				errs = append(errs, fmt.Errorf("daemon.cors.max_age: cannot be negative, got %s", c.MaxAge))
			}
			if c.Enable != nil && *c.Enable && len(c.Origins) == 0 {
				errs = append(errs, fmt.Errorf("daemon.cors.allow_origins: required when CORS is enabled"))
			}
		}
	}

	if s.Backups != nil && s.Backups.Retain != nil && *s.Backups.Retain < 0 {
		errs = append(errs, fmt.Errorf("backups.retain: cannot be negative, got %d", *s.Backups.Retain))
	}

	return stdErrors.Join(errs...)
}

// Addr returns the configured daemon address, or DefaultAddr.
func (s Settings) Addr() string {
	if s.Daemon != nil && s.Daemon.Addr != nil && strings.TrimSpace(*s.Daemon.Addr) != "" {
		return strings.TrimSpace(*s.Daemon.Addr)
	}
	return DefaultAddr
}

// BackupDir returns the configured backup directory, or an empty string for the default location.
func (s Settings) BackupDir() string {
	if s.Backups == nil || s.Backups.Dir == nil {
		return ""
	}
	return strings.TrimSpace(*s.Backups.Dir)
}

// BackupRetention returns the configured number of backups to keep, or zero to keep all.
func (s Settings) BackupRetention() int {
	if s.Backups == nil || s.Backups.Retain == nil {
		return 0
	}
	return *s.Backups.Retain
}

// ValidateAddr checks that addr is a valid "host:port" string.
func ValidateAddr(addr string) error {
	_, port, err := net.SplitHostPort(strings.TrimSpace(addr))
	if err != nil {
		return fmt.Errorf("invalid address format: %w", err)
	}

	if port == "" {
		return fmt.Errorf("address missing port")
	}

	if _, err := strconv.Atoi(port); err != nil {
		if _, err := net.LookupPort("tcp", port); err != nil {
			return fmt.Errorf("invalid address port: %s", port)
		}
	}

	return nil
}
