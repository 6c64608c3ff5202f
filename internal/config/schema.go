package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaDocument []byte

var documentSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaDocument))
})

// ValidationIssue is a single schema violation found in a document.
type ValidationIssue struct {
	// Field is the dotted path to the offending value, '(root)' for the document itself.
	Field string `json:"field" yaml:"field"`

	// Description explains the violation.
	Description string `json:"description" yaml:"description"`
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// Schema returns the JSON Schema that openclaw.json documents are validated against.
func Schema() []byte {
	return append([]byte(nil), schemaDocument...)
}

// ValidateDocument checks raw JSON against the openclaw.json schema.
// An error is returned when the data cannot be checked at all (e.g. it is not JSON),
// otherwise any violations are returned as issues.
func ValidateDocument(data []byte) ([]ValidationIssue, error) {
	schema, err := documentSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to load document schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, err
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]ValidationIssue, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, ValidationIssue{
			Field:       e.Field(),
			Description: e.Description(),
		})
	}

	return issues, nil
}

// joinIssues renders issues on a single line for error messages.
func joinIssues(issues []ValidationIssue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}
