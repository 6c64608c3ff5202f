package output

import "io"

// Handler renders command results of type T in a single output format (text, JSON or YAML).
// Commands pick a Handler through cmd.FormatHandler based on the --format flag.
type Handler[T any] interface {
	// Writer returns the io.Writer this Handler will write to.
	Writer() io.Writer

	// HandleResult renders a single item, such as one provider or the config file path.
	HandleResult(item T) error

	// HandleResults renders a collection of items, such as the configured providers or backups.
	// Structured formats render an empty collection as an empty list rather than omitting it.
	HandleResults(items ...T) error

	// HandleError renders the error in the Handler's format.
	// Handlers without a structured error representation return the error for cobra to report.
	HandleError(err error) error
}

// WriteFunc writes the output that surrounds a collection of items of type T,
// typically a header or a footer in text output.
//
// It receives the io.Writer to write to and the number of items being printed.
// It never sees the individual items themselves.
type WriteFunc[T any] func(w io.Writer, count int)

// Printer writes human readable text for items of type T.
// The text Handler calls Header once, Item for each element, then Footer once.
type Printer[T any] interface {
	// Header is called once before the first Item.
	Header(w io.Writer, count int)

	// SetHeader replaces the function used by Header, for example to print a count.
	SetHeader(fn WriteFunc[T])

	// Item prints one element.
	Item(w io.Writer, elem T) error

	// Footer is called once after the last Item.
	Footer(w io.Writer, count int)

	// SetFooter replaces the function used by Footer.
	SetFooter(fn WriteFunc[T])
}

// ResultsPayload wraps a collection of results for structured output.
// It is used when a command prints a list, such as the configured providers.
// The payload is serialized with the key "results".
type ResultsPayload[T any] struct {
	Results []T `json:"results" yaml:"results"`
}

// ResultPayload wraps a single result for structured output.
// It is used when a command prints one value, such as the config file path.
// The payload is serialized with the key "result".
type ResultPayload[T any] struct {
	Result T `json:"result" yaml:"result"`
}

// ErrorPayload carries the message of a failed command in structured output.
// The payload is serialized with the key "error".
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}
