package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type testPrinter struct {
	header WriteFunc[testSample]
	footer WriteFunc[testSample]
	err    error
}

func (p *testPrinter) Header(w io.Writer, count int) {
	if p.header != nil {
		p.header(w, count)
	}
}

func (p *testPrinter) SetHeader(fn WriteFunc[testSample]) { p.header = fn }

func (p *testPrinter) Item(w io.Writer, elem testSample) error {
	if p.err != nil {
		return p.err
	}
	_, _ = fmt.Fprintf(w, "%d: %s\n", elem.ID, elem.Name)
	return nil
}

func (p *testPrinter) Footer(w io.Writer, count int) {
	if p.footer != nil {
		p.footer(w, count)
	}
}

func (p *testPrinter) SetFooter(fn WriteFunc[testSample]) { p.footer = fn }

func TestTextHandler_HandleResults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := &testPrinter{}
	p.SetHeader(func(w io.Writer, count int) { _, _ = fmt.Fprintf(w, "Found %d\n", count) })
	p.SetFooter(func(w io.Writer, _ int) { _, _ = fmt.Fprintln(w, "--") })

	h := NewTextHandler[testSample](buf, p)
	require.Equal(t, buf, h.Writer())

	require.NoError(t, h.HandleResults(testSample{ID: 1, Name: "a"}, testSample{ID: 2, Name: "b"}))
	require.Equal(t, "Found 2\n1: a\n2: b\n--\n", buf.String())
}

func TestTextHandler_HandleResult(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewTextHandler[testSample](buf, &testPrinter{})

	require.NoError(t, h.HandleResult(testSample{ID: 7, Name: "x"}))
	require.Equal(t, "7: x\n", buf.String())
}

func TestTextHandler_Empty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewTextHandler[testSample](buf, &testPrinter{})

	require.NoError(t, h.HandleResults())
	require.Equal(t, "No items found\n", buf.String())
}

func TestTextHandler_Errors(t *testing.T) {
	t.Parallel()

	itemErr := errors.New("cannot print")
	h := NewTextHandler[testSample](io.Discard, &testPrinter{err: itemErr})

	require.ErrorIs(t, h.HandleResults(testSample{}), itemErr)

	handleErr := errors.New("failed")
	require.ErrorIs(t, h.HandleError(handleErr), handleErr)
}
