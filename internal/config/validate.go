package config

import (
	stdErrors "errors"
	"strings"
)

// placeholderAPIKey is the value the runtime's onboarding templates use for an unset key.
const placeholderAPIKey = "YOUR_API_KEY_HERE"

// Validate checks the provider against the rules the editor applies before saving a provider form.
// All violations are joined into the returned error.
func (p Provider) Validate() error {
	var errs []error

	if strings.TrimSpace(p.BaseURL) == "" {
		errs = append(errs, stdErrors.New("base URL cannot be empty"))
	}

	if p.APIKey == nil || strings.TrimSpace(*p.APIKey) == "" {
		errs = append(errs, stdErrors.New("API key cannot be empty"))
	}

	if strings.TrimSpace(p.API) == "" {
		errs = append(errs, stdErrors.New("API type cannot be empty"))
	}

	if len(p.Models) == 0 {
		errs = append(errs, stdErrors.New("at least one model must be configured"))
	}

	return stdErrors.Join(errs...)
}

// HasAPIKey reports whether the provider carries a usable API key (set, non-empty and not the template placeholder).
func (p Provider) HasAPIKey() bool {
	if p.APIKey == nil {
		return false
	}

	key := strings.TrimSpace(*p.APIKey)
	return key != "" && key != placeholderAPIKey
}

// Validate checks the agents defaults against the rules the editor applies before saving them.
// All violations are joined into the returned error.
func (d AgentsDefaults) Validate() error {
	var errs []error

	if d.Model == nil || strings.TrimSpace(d.Model.Primary) == "" {
		errs = append(errs, stdErrors.New("primary model cannot be empty"))
	}

	if d.MaxConcurrent != nil && *d.MaxConcurrent < 1 {
		errs = append(errs, stdErrors.New("max concurrent must be greater than 0"))
	}

	if d.Subagents != nil && d.Subagents.MaxConcurrent < 1 {
		errs = append(errs, stdErrors.New("subagents max concurrent must be greater than 0"))
	}

	return stdErrors.Join(errs...)
}
