package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSample type for testing
type testSample struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestNewJSONHandler_Writer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 2)
	require.Equal(t, buf, h.Writer())
}

func TestJSONHandler_HandleResult(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 2)

	require.NoError(t, h.HandleResult(testSample{ID: 1, Name: "openai"}))

	expected := `{
  "result": {
    "id": 1,
    "name": "openai"
  }
}` + "\n"
	require.Equal(t, expected, buf.String())
}

func TestJSONHandler_HandleResults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 2)

	require.NoError(t, h.HandleResults(testSample{ID: 1, Name: "openai"}, testSample{ID: 2, Name: "anthropic"}))

	expected := `{
  "results": [
    {
      "id": 1,
      "name": "openai"
    },
    {
      "id": 2,
      "name": "anthropic"
    }
  ]
}` + "\n"
	require.Equal(t, expected, buf.String())
}

func TestJSONHandler_HandleResults_Empty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 0)

	require.NoError(t, h.HandleResults())
	require.Equal(t, `{"results":[]}`+"\n", buf.String())
}

func TestJSONHandler_HandleError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 0)

	require.NoError(t, h.HandleError(errors.New("config file not found")))
	require.Equal(t, `{"error":"config file not found"}`+"\n", buf.String())
}
