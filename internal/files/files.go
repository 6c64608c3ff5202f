package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvVarXDGConfigHome is the XDG Base Directory env var name for config files.
	EnvVarXDGConfigHome = "XDG_CONFIG_HOME"

	// OpenClawDirName is the directory under the user's home that holds the OpenClaw runtime configuration.
	OpenClawDirName = ".openclaw"

	// OpenClawConfigFileName is the name of the OpenClaw runtime configuration document.
	OpenClawConfigFileName = "openclaw.json"
)

// ErrHomeDirNotFound is returned when the current user's home directory cannot be determined.
var ErrHomeDirNotFound = errors.New("user home directory not found")

// homeDir is swapped in tests.
var homeDir = os.UserHomeDir

// AppDirName returns the name of the application directory for use in user-specific operations where data is being written.
func AppDirName() string {
	return "clawconf"
}

// DefaultConfigPath returns the location of the OpenClaw configuration document: ~/.openclaw/openclaw.json
func DefaultConfigPath() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, OpenClawDirName, OpenClawConfigFileName), nil
}

// UserSpecificConfigDir returns the directory that should be used to store clawconf's own settings.
// It adheres to the XDG Base Directory Specification, respecting the XDG_CONFIG_HOME environment variable.
// When XDG_CONFIG_HOME is not set, it defaults to ~/.config/clawconf
// See: https://specifications.freedesktop.org/basedir-spec/latest/
func UserSpecificConfigDir() (string, error) {
	if ch, ok := os.LookupEnv(EnvVarXDGConfigHome); ok && strings.TrimSpace(ch) != "" {
		dir := strings.TrimSpace(ch)
		if filepath.IsAbs(dir) {
			return filepath.Join(dir, AppDirName()), nil
		}

		return "", fmt.Errorf(
			"environment variable '%s' must be an absolute path, got: %s",
			EnvVarXDGConfigHome,
			dir,
		)
	}

	home, err := userHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", AppDirName()), nil
}

// userHomeDir resolves the current user's home directory, wrapping any failure in ErrHomeDirNotFound.
func userHomeDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirNotFound, err)
	}
	if strings.TrimSpace(home) == "" {
		return "", fmt.Errorf("%w: empty path", ErrHomeDirNotFound)
	}

	return home, nil
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory (and any parents) with the given permissions if it doesn't exist.
// Rejects paths that exist but are not directories.
func EnsureDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", path)
	}

	return nil
}

// CopyFile copies the contents of src to dst, creating or truncating dst with the given permissions.
// The number of bytes copied is returned.
func CopyFile(src string, dst string, perm os.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}

	if err := out.Sync(); err != nil {
		_ = out.Close()
		return n, err
	}

	return n, out.Close()
}
