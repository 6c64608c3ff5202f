package printer

import (
	"fmt"
	"io"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var _ output.Printer[config.AvailableModel] = (*ModelPrinter)(nil)

// ModelPrinter handles text output for the models offered by configured providers.
type ModelPrinter struct {
	hooks[config.AvailableModel]
}

// Item writes a model reference followed by its context window and output limit.
func (p *ModelPrinter) Item(w io.Writer, m config.AvailableModel) error {
	_, _ = fmt.Fprintf(
		w,
		"  %s  context: %d  max tokens: %d  tier: %s\n",
		m.Ref,
		m.Model.ContextWindow,
		m.Model.MaxTokens,
		valueOr(m.Model.Tier, config.TierOther),
	)

	return nil
}
