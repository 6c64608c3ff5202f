// Package printer renders clawconf command results as human readable text.
package printer

import (
	"io"

	"github.com/clawdesk/clawconf/internal/cmd/output"
)

// hooks holds the optional header and footer functions shared by every printer.
type hooks[T any] struct {
	headerFunc output.WriteFunc[T]
	footerFunc output.WriteFunc[T]
}

// Header writes a custom header if one has been configured via SetHeader.
func (h *hooks[T]) Header(w io.Writer, count int) {
	if h.headerFunc != nil {
		h.headerFunc(w, count)
	}
}

// SetHeader configures a custom header function for the printer.
func (h *hooks[T]) SetHeader(fn output.WriteFunc[T]) {
	h.headerFunc = fn
}

// Footer writes a custom footer if one has been configured via SetFooter.
func (h *hooks[T]) Footer(w io.Writer, count int) {
	if h.footerFunc != nil {
		h.footerFunc(w, count)
	}
}

// SetFooter configures a custom footer function for the printer.
func (h *hooks[T]) SetFooter(fn output.WriteFunc[T]) {
	h.footerFunc = fn
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
