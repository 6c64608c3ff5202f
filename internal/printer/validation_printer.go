package printer

import (
	"fmt"
	"io"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var _ output.Printer[ValidationResult] = (*ValidationPrinter)(nil)

// ValidationResult is the outcome of checking the config file against the document schema.
type ValidationResult struct {
	Path   string                   `json:"path"   yaml:"path"`
	Valid  bool                     `json:"valid"  yaml:"valid"`
	Issues []config.ValidationIssue `json:"issues" yaml:"issues"`
}

// NewValidationResult builds a ValidationResult, Issues is never nil.
func NewValidationResult(path string, issues []config.ValidationIssue) ValidationResult {
	if issues == nil {
		issues = []config.ValidationIssue{}
	}

	return ValidationResult{
		Path:   path,
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}

// ValidationPrinter handles text output for validation results.
type ValidationPrinter struct {
	hooks[ValidationResult]
}

// Item writes the validation outcome and any issues.
func (p *ValidationPrinter) Item(w io.Writer, result ValidationResult) error {
	if result.Valid {
		_, _ = fmt.Fprintf(w, "✓ %s is valid\n", result.Path)
		return nil
	}

	_, _ = fmt.Fprintf(w, "✗ %s has %d issue(s):\n", result.Path, len(result.Issues))
	for _, issue := range result.Issues {
		_, _ = fmt.Fprintf(w, "  - %s\n", issue)
	}

	return nil
}
