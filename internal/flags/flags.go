package flags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/clawdesk/clawconf/internal/files"
)

const (
	// Env vars
	EnvVarConfigFile   = "CLAWCONF_CONFIG_FILE"
	EnvVarSettingsFile = "CLAWCONF_SETTINGS_FILE"
	EnvVarLogPath      = "CLAWCONF_LOG_PATH"
	EnvVarLogLevel     = "CLAWCONF_LOG_LEVEL"

	// Defaults
	DefaultSettingsFileName = "settings.toml"
	DefaultLogPath          = ""
	DefaultLogLevel         = "info"

	// Flag names
	FlagNameConfigFile   = "config-file"
	FlagNameSettingsFile = "settings-file"
	FlagNameLogPath      = "log-path"
	FlagNameLogLevel     = "log-level"
)

var (
	ConfigFile   string
	SettingsFile string
	LogPath      string
	LogLevel     string
)

// InitFlags registers the global flags on the given flag set, seeding their defaults from the environment.
func InitFlags(fs *pflag.FlagSet) {
	initConfigFile(fs)
	initSettingsFile(fs)
	initLogger(fs)
}

// DefaultConfigFile returns ~/.openclaw/openclaw.json, or an empty string when the home directory is unknown.
// An empty config file path is resolved (and reported) when the persistence service is created.
func DefaultConfigFile() string {
	path, err := files.DefaultConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// DefaultSettingsFile returns the settings file under the user-specific clawconf config directory.
func DefaultSettingsFile() string {
	dir, err := files.UserSpecificConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, DefaultSettingsFileName)
}

func initConfigFile(fs *pflag.FlagSet) {
	if ConfigFile == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarConfigFile)); env != "" {
			ConfigFile = env
		} else {
			ConfigFile = DefaultConfigFile()
		}
	}
	fs.StringVar(&ConfigFile, FlagNameConfigFile, ConfigFile, "path to the OpenClaw config file")
}

func initSettingsFile(fs *pflag.FlagSet) {
	if SettingsFile == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarSettingsFile)); env != "" {
			SettingsFile = env
		} else {
			SettingsFile = DefaultSettingsFile()
		}
	}
	fs.StringVar(&SettingsFile, FlagNameSettingsFile, SettingsFile, "path to the clawconf settings file")
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogPath)); env != "" {
			LogPath = env
		} else {
			LogPath = DefaultLogPath
		}
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
			LogLevel = strings.ToLower(env)
		} else {
			LogLevel = DefaultLogLevel
		}
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for clawconf logs")
}
