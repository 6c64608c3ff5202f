package config

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/errors"
	"github.com/clawdesk/clawconf/internal/files"
	"github.com/clawdesk/clawconf/internal/perms"
)

// BackupsDirName is the directory, next to openclaw.json, that holds backups by default.
const BackupsDirName = "backups"

// Service persists the openclaw.json document.
// Every exported method holds the service mutex for its whole duration,
// so read-modify-write operations never interleave.
// NewService should be used to create instances of Service.
type Service struct {
	mu sync.Mutex

	logger hclog.Logger

	// path is the location of openclaw.json.
	path string

	// backupDir is where backups are written and listed from.
	backupDir string

	// retention is the number of backups kept after each backup, zero keeps all.
	retention int

	// now names backups.
	now func() time.Time
}

// NewService creates a persistence service.
// Without WithConfigPath the document is located at ~/.openclaw/openclaw.json, and
// errors.ErrConfigPathNotFound is returned when the home directory cannot be determined.
func NewService(logger hclog.Logger, opt ...ServiceOption) (*Service, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	opts, err := NewServiceOptions(opt...)
	if err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		path, err = files.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrConfigPathNotFound, err)
		}
	}

	backupDir := opts.BackupDir
	if backupDir == "" {
		backupDir = filepath.Join(filepath.Dir(path), BackupsDirName)
	}

	return &Service{
		logger:    logger.Named("config"),
		path:      path,
		backupDir: backupDir,
		retention: opts.BackupRetention,
		now:       opts.Clock,
	}, nil
}

// Path returns the location of openclaw.json.
func (s *Service) Path() string {
	return s.path
}

// BackupDir returns the directory backups are written to.
func (s *Service) BackupDir() string {
	return s.backupDir
}

// Exists reports whether openclaw.json is present.
func (s *Service) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return files.Exists(s.path)
}

// Read loads the document. A missing file is not an error: an empty document is returned instead.
func (s *Service) Read() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Write merges cfg over the document on disk (see Merge) and writes the result,
// creating the config directory when needed.
func (s *Service) Write(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(cfg)
}

// Validate checks the document on disk against the schema and returns any violations.
func (s *Service) Validate() ([]ValidationIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %w", errors.ErrRead, err)
	}

	issues, err := ValidateDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	return issues, nil
}

func (s *Service) read() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Config file not found, using empty document", "path", s.path)
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: %w", errors.ErrRead, err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (s *Service) write(cfg Config) error {
	if err := files.EnsureDir(filepath.Dir(s.path), perms.ConfigDir); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	// Read the existing document so sections missing from cfg are preserved.
	existing, err := s.read()
	if err != nil {
		return err
	}

	data, err := Encode(Merge(existing, cfg))
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(s.path, data, perms.ConfigFile); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWrite, err)
	}

	s.logger.Debug("Config written", "path", s.path, "sections", cfg.Sections())

	return nil
}

// Decode parses and schema-checks an openclaw.json document.
// Any failure is reported as errors.ErrParse.
func Decode(data []byte) (Config, error) {
	issues, err := ValidateDocument(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrParse, err)
	}
	if len(issues) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errors.ErrParse, joinIssues(issues))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	return cfg, nil
}

// Encode renders a document as indented JSON.
// Any failure is reported as errors.ErrSerialize.
func Encode(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg.normalized(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSerialize, err)
	}

	return data, nil
}
