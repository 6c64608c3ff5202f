package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

var _ Handler[any] = (*YAMLHandler[any])(nil)

// YAMLHandler renders results and errors as YAML documents using the yaml struct tags,
// wrapped the same way as JSONHandler.
type YAMLHandler[T any] struct {
	out    io.Writer
	indent int
}

// NewYAMLHandler returns a YAMLHandler indenting nested nodes by indentSpaces.
func NewYAMLHandler[T any](w io.Writer, indentSpaces int) *YAMLHandler[T] {
	return &YAMLHandler[T]{out: w, indent: indentSpaces}
}

// Writer returns the underlying io.Writer where YAML will be written.
func (h *YAMLHandler[T]) Writer() io.Writer {
	return h.out
}

// HandleResult writes item as a YAML document under a "result" key.
func (h *YAMLHandler[T]) HandleResult(item T) error {
	return h.write(ResultPayload[T]{Result: item})
}

// HandleResults writes items as a YAML document under a "results" key.
// It always emits a list, so no items renders as "results: []".
func (h *YAMLHandler[T]) HandleResults(items ...T) error {
	if items == nil {
		items = []T{}
	}
	return h.write(ResultsPayload[T]{Results: items})
}

// HandleError writes the error message as a YAML document under an "error" key.
func (h *YAMLHandler[T]) HandleError(err error) error {
	return h.write(ErrorPayload{Error: err.Error()})
}

func (h *YAMLHandler[T]) write(v any) (err error) {
	enc := yaml.NewEncoder(h.out)
	enc.SetIndent(h.indent)

	// Close flushes the document; its error matters only when encoding succeeded.
	defer func() {
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	}()

	return enc.Encode(v)
}
