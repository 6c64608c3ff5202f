package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var _ output.Printer[AgentsDefaultsResult] = (*AgentsDefaultsPrinter)(nil)

// AgentsDefaultsResult wraps the agent defaults, which may be absent.
type AgentsDefaultsResult struct {
	Defaults *config.AgentsDefaults `json:"defaults" yaml:"defaults"`
}

// AgentsDefaultsPrinter handles text output for agent defaults.
type AgentsDefaultsPrinter struct {
	hooks[AgentsDefaultsResult]
}

// Item writes the agent defaults to the output.
func (p *AgentsDefaultsPrinter) Item(w io.Writer, result AgentsDefaultsResult) error {
	d := result.Defaults
	if d == nil {
		_, _ = fmt.Fprintln(w, "No agent defaults configured")
		return nil
	}

	_, _ = fmt.Fprintln(w, "Agent defaults:")
	if d.Model != nil {
		_, _ = fmt.Fprintf(w, "  Primary model: %s\n", valueOr(&d.Model.Primary, "(not set)"))
		_, _ = fmt.Fprintf(w, "  Fast model: %s\n", valueOr(d.Model.Fast, "(not set)"))
		_, _ = fmt.Fprintf(w, "  Balanced model: %s\n", valueOr(d.Model.Balanced, "(not set)"))
		_, _ = fmt.Fprintf(w, "  Powerful model: %s\n", valueOr(d.Model.Powerful, "(not set)"))
	} else {
		_, _ = fmt.Fprintln(w, "  Primary model: (not set)")
	}
	if d.Workspace != nil {
		_, _ = fmt.Fprintf(w, "  Workspace: %s\n", *d.Workspace)
	}
	if d.MaxConcurrent != nil {
		_, _ = fmt.Fprintf(w, "  Max concurrent: %d\n", *d.MaxConcurrent)
	}
	if d.Subagents != nil {
		_, _ = fmt.Fprintf(w, "  Subagents max concurrent: %d\n", d.Subagents.MaxConcurrent)
	}

	if len(d.Models) > 0 {
		_, _ = fmt.Fprintf(w, "  Aliases (%d):\n", len(d.Models))
		for _, ref := range slices.Sorted(maps.Keys(d.Models)) {
			_, _ = fmt.Fprintf(w, "    %s -> %s\n", d.Models[ref].Alias, ref)
		}
	}

	return nil
}
