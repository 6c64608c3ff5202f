package config

const (
	// DefaultMaxConcurrent is the agent concurrency limit used when the document has no agents section.
	DefaultMaxConcurrent uint32 = 6

	// DefaultSubagentsMaxConcurrent is the subagent concurrency limit used when the document has no agents section.
	DefaultSubagentsMaxConcurrent uint32 = 12
)

// DefaultAgentsDefaults returns the starting point for a new agents section:
// an unset primary model, 6 concurrent agents and 12 concurrent subagents.
func DefaultAgentsDefaults() AgentsDefaults {
	maxConcurrent := DefaultMaxConcurrent
	return AgentsDefaults{
		Model:         &ModelConfig{Primary: ""},
		Models:        map[string]ModelAlias{},
		MaxConcurrent: &maxConcurrent,
		Subagents:     &SubagentsConfig{MaxConcurrent: DefaultSubagentsMaxConcurrent},
	}
}

// AgentsDefaults returns the agents defaults section, or nil when the document has none.
func (s *Service) AgentsDefaults() (*AgentsDefaults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return nil, err
	}

	if cfg.Agents == nil {
		return nil, nil
	}

	defaults := cfg.Agents.Defaults
	return &defaults, nil
}

// SaveAgentsDefaults replaces the agents defaults section, creating the agents section when needed.
func (s *Service) SaveAgentsDefaults(defaults AgentsDefaults) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}

	if cfg.Agents == nil {
		cfg.Agents = &AgentsConfig{}
	}
	cfg.Agents.Defaults = defaults

	if err := s.write(cfg); err != nil {
		return err
	}

	s.logger.Info("Agents defaults saved")

	return nil
}
