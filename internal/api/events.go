package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/watch"
)

// EventTypeChange is the SSE event name used for config file changes.
const EventTypeChange = "change"

// RegisterEventRoutes sets up the config change event stream.
func RegisterEventRoutes(routerAPI huma.API, notifier contracts.ChangeNotifier, apiPathPrefix string) {
	eventsAPI := huma.NewGroup(routerAPI, apiPathPrefix)

	sse.Register(
		eventsAPI,
		huma.Operation{
			OperationID: "streamConfigEvents",
			Method:      http.MethodGet,
			Summary:     "Stream config file change events",
			Description: "Emits a 'change' event whenever openclaw.json is created, written, removed or renamed.",
			Tags:        []string{"Config"},
		},
		map[string]any{
			EventTypeChange: watch.Event{},
		},
		func(ctx context.Context, _ *struct{}, send sse.Sender) {
			streamEvents(ctx, notifier, send)
		},
	)
}

// streamEvents forwards change events until the client goes away or the notifier stops.
func streamEvents(ctx context.Context, notifier contracts.ChangeNotifier, send sse.Sender) {
	events, unsubscribe := notifier.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := send.Data(ev); err != nil {
				return
			}
		}
	}
}
