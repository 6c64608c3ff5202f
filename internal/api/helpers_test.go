package api

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/watch"
)

func ptr[T any](v T) *T {
	return &v
}

// fakeNotifier replays a fixed set of events to each subscriber and then closes the stream.
type fakeNotifier struct {
	events []watch.Event
}

func (n *fakeNotifier) Subscribe() (<-chan watch.Event, func()) {
	ch := make(chan watch.Event, len(n.events))
	for _, ev := range n.events {
		ch <- ev
	}
	close(ch)

	return ch, func() {}
}

func newTestService(t *testing.T) *config.Service {
	t.Helper()

	svc, err := config.NewService(
		hclog.NewNullLogger(),
		config.WithConfigPath(filepath.Join(t.TempDir(), ".openclaw", "openclaw.json")),
		config.WithClock(func() time.Time { return time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC) }),
	)
	require.NoError(t, err)

	return svc
}

func newTestAPI(t *testing.T, svc *config.Service, notifier *fakeNotifier) humatest.TestAPI {
	t.Helper()

	if notifier == nil {
		notifier = &fakeNotifier{}
	}

	_, testAPI := humatest.New(t, NewConfig("clawconf test", "1.0.0"))
	prefix, err := RegisterRoutes(testAPI, svc, notifier)
	require.NoError(t, err)
	require.Equal(t, "/api/v1", prefix)

	return testAPI
}

func testProvider(models ...string) config.Provider {
	p := config.Provider{
		BaseURL: "https://api.example.com/v1",
		APIKey:  ptr("sk-test"),
		API:     "openai-completions",
	}
	for _, m := range models {
		p.Models = append(p.Models, config.ModelInfo{
			ID:            m,
			Name:          m,
			Input:         []string{"text"},
			Cost:          config.ModelCost{Input: 1, Output: 2},
			ContextWindow: 128000,
			MaxTokens:     4096,
		})
	}
	return p
}
