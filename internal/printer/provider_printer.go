package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var _ output.Printer[ProviderResult] = (*ProviderPrinter)(nil)

// ProviderResult is a provider together with the ID it is stored under.
type ProviderResult struct {
	ID string `json:"id" yaml:"id"`

	config.Provider `yaml:",inline"`
}

// ProviderResults converts the providers map into results ordered by ID.
func ProviderResults(providers map[string]config.Provider) []ProviderResult {
	ids := slices.Sorted(maps.Keys(providers))

	results := make([]ProviderResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, ProviderResult{ID: id, Provider: providers[id]})
	}

	return results
}

// ProviderPrinter handles text output for providers.
// API keys are never printed, only whether one is set.
type ProviderPrinter struct {
	hooks[ProviderResult]
}

// Item writes a formatted provider to the output.
func (p *ProviderPrinter) Item(w io.Writer, result ProviderResult) error {
	_, _ = fmt.Fprintf(w, "%s\n", result.ID)
	_, _ = fmt.Fprintf(w, "  Base URL: %s\n", result.BaseURL)
	_, _ = fmt.Fprintf(w, "  API: %s\n", result.API)
	_, _ = fmt.Fprintf(w, "  API Key: %s\n", apiKeyStatus(result.Provider))
	_, _ = fmt.Fprintf(w, "  Models (%d):\n", len(result.Models))
	for _, m := range result.Models {
		_, _ = fmt.Fprintf(w, "    %s\n", formatModel(m))
	}

	return nil
}

func apiKeyStatus(p config.Provider) string {
	if p.HasAPIKey() {
		return "set"
	}
	return "not set"
}

// formatModel renders a model on one line, e.g. "gpt-4o (GPT-4o) [fast, reasoning]".
func formatModel(m config.ModelInfo) string {
	var b strings.Builder
	b.WriteString(m.ID)
	if m.Name != "" && m.Name != m.ID {
		_, _ = fmt.Fprintf(&b, " (%s)", m.Name)
	}

	var tags []string
	if m.Tier != nil && *m.Tier != "" {
		tags = append(tags, *m.Tier)
	}
	if m.Reasoning {
		tags = append(tags, "reasoning")
	}
	if len(tags) > 0 {
		_, _ = fmt.Fprintf(&b, " [%s]", strings.Join(tags, ", "))
	}

	return b.String()
}
