package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/renameio/v2"

	"github.com/clawdesk/clawconf/internal/errors"
	"github.com/clawdesk/clawconf/internal/files"
	"github.com/clawdesk/clawconf/internal/perms"
)

const (
	backupFilePrefix = "openclaw_backup_"
	backupFileSuffix = ".json"

	// backupTimestampLayout is YYYYMMDD_HHMMSS, always rendered in UTC.
	backupTimestampLayout = "20060102_150405"
)

// BackupInfo describes a backup file.
type BackupInfo struct {
	Name    string    `json:"name"    yaml:"name"`
	Path    string    `json:"path"    yaml:"path"`
	Size    int64     `json:"size"    yaml:"size"`
	ModTime time.Time `json:"modTime" yaml:"modTime"`
}

// BackupFileName returns the name of a backup taken at t, e.g. openclaw_backup_20250102_150405.json
func BackupFileName(t time.Time) string {
	return backupFilePrefix + t.UTC().Format(backupTimestampLayout) + backupFileSuffix
}

// isBackupFileName reports whether name looks like a file produced by BackupFileName.
func isBackupFileName(name string) bool {
	if !strings.HasPrefix(name, backupFilePrefix) || !strings.HasSuffix(name, backupFileSuffix) {
		return false
	}

	stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupFilePrefix), backupFileSuffix)
	_, err := time.Parse(backupTimestampLayout, stamp)
	return err == nil
}

// Backup copies openclaw.json into the backup directory under a timestamped name and returns the backup's path.
// Two backups taken within the same second share a name; the later one replaces the earlier.
func (s *Service) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !files.Exists(s.path) {
		return "", errors.ErrConfigNotFound
	}

	if err := files.EnsureDir(s.backupDir, perms.ConfigDir); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	dst := filepath.Join(s.backupDir, BackupFileName(s.now()))
	if _, err := files.CopyFile(s.path, dst, perms.ConfigFile); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	s.logger.Info("Config backed up", "path", s.path, "backup", dst)

	if s.retention > 0 {
		s.prune()
	}

	return dst, nil
}

// Restore replaces openclaw.json with the contents of the file at backupPath.
// The backup is copied as-is; it is not merged with or validated against the current document.
func (s *Service) Restore(backupPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backupPath = strings.TrimSpace(backupPath)
	if backupPath == "" || !files.Exists(backupPath) {
		return errors.NewErrFileNotFound(backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	if err := files.EnsureDir(filepath.Dir(s.path), perms.ConfigDir); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	if err := renameio.WriteFile(s.path, data, perms.ConfigFile); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	s.logger.Info("Config restored", "path", s.path, "backup", backupPath)

	return nil
}

// ListBackups returns the backups in the backup directory, newest first.
// A missing backup directory yields no backups.
func (s *Service) ListBackups() ([]BackupInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listBackups()
}

func (s *Service) listBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("%w: failed to list backups in '%s': %w", errors.ErrIO, s.backupDir, err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isBackupFileName(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat.
			continue
		}

		backups = append(backups, BackupInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(s.backupDir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	// Names embed a fixed-width timestamp, so reverse lexical order is newest first.
	slices.SortFunc(backups, func(a, b BackupInfo) int {
		return strings.Compare(b.Name, a.Name)
	})

	return backups, nil
}

// prune removes the oldest backups beyond the retention limit.
// Failures are logged and otherwise ignored: the backup that triggered pruning has already succeeded.
func (s *Service) prune() {
	backups, err := s.listBackups()
	if err != nil {
		s.logger.Warn("Unable to list backups for pruning", "dir", s.backupDir, "error", err)
		return
	}

	if len(backups) <= s.retention {
		return
	}

	for _, b := range backups[s.retention:] {
		if err := os.Remove(b.Path); err != nil {
			s.logger.Warn("Unable to remove old backup", "backup", b.Path, "error", err)
			continue
		}
		s.logger.Debug("Removed old backup", "backup", b.Path)
	}
}
