package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/clawdesk/clawconf/internal/errors"
)

// Providers returns a copy of the configured providers keyed by ID.
// The map is empty (not nil) when the document has no models section.
func (s *Service) Providers() (map[string]Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return nil, err
	}

	if cfg.Models == nil || cfg.Models.Providers == nil {
		return map[string]Provider{}, nil
	}

	return maps.Clone(cfg.Models.Providers), nil
}

// Provider returns a single provider by ID.
func (s *Service) Provider(id string) (Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return Provider{}, err
	}

	if cfg.Models != nil {
		if p, ok := cfg.Models.Providers[id]; ok {
			return p, nil
		}
	}

	return Provider{}, fmt.Errorf("%w: %s", errors.ErrProviderNotFound, id)
}

// AddProvider stores the provider under id, replacing any provider already stored there.
// A models section (mode 'merge') is created when the document has none.
func (s *Service) AddProvider(id string, p Provider) (UpsertResult, error) {
	if strings.TrimSpace(id) == "" {
		return Noop, errors.NewErrInvalidProvider("provider ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return Noop, err
	}

	if cfg.Models == nil {
		cfg.Models = &ModelsConfig{Mode: DefaultModelsMode}
	}
	if cfg.Models.Providers == nil {
		cfg.Models.Providers = map[string]Provider{}
	}

	result := Created
	if _, ok := cfg.Models.Providers[id]; ok {
		result = Updated
	}
	cfg.Models.Providers[id] = p

	if err := s.write(cfg); err != nil {
		return Noop, err
	}

	s.logger.Info("Provider saved", "id", id, "result", result)

	return result, nil
}

// UpdateProvider replaces an existing provider.
// errors.ErrInvalidProvider is returned when no provider is stored under id,
// including when the document has no models section; the file is not written in that case.
func (s *Service) UpdateProvider(id string, p Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}

	if cfg.Models == nil {
		return providerNotFound(id)
	}
	if _, ok := cfg.Models.Providers[id]; !ok {
		return providerNotFound(id)
	}

	cfg.Models.Providers[id] = p

	if err := s.write(cfg); err != nil {
		return err
	}

	s.logger.Info("Provider updated", "id", id)

	return nil
}

// DeleteProvider removes the provider stored under id.
// Removing a provider that does not exist is not an error and leaves the file untouched.
func (s *Service) DeleteProvider(id string) (UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return Noop, err
	}

	if cfg.Models == nil {
		return Noop, nil
	}
	if _, ok := cfg.Models.Providers[id]; !ok {
		return Noop, nil
	}

	delete(cfg.Models.Providers, id)

	if err := s.write(cfg); err != nil {
		return Noop, err
	}

	s.logger.Info("Provider deleted", "id", id)

	return Deleted, nil
}

func providerNotFound(id string) error {
	return errors.NewErrInvalidProvider(fmt.Sprintf("Provider '%s' not found", id))
}
