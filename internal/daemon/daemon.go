// Package daemon serves the config API over HTTP and watches openclaw.json for external edits.
package daemon

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/clawdesk/clawconf/internal/contracts"
)

// Daemon runs the API server and the config file watcher until its context ends.
// NewDaemon should be used to create instances of Daemon.
type Daemon struct {
	logger     hclog.Logger
	apiServer  *APIServer
	watcher    contracts.ChangeWatcher
	logChanges bool
}

// NewDaemon creates a new Daemon instance with the provided dependencies and options.
func NewDaemon(deps Dependencies, opt ...Option) (*Daemon, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid daemon dependencies: %w", err)
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon options: %w", err)
	}

	apiDeps, err := NewAPIDependencies(deps.Logger, deps.Service, deps.Watcher, deps.APIAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid API dependencies: %w", err)
	}

	apiServer, err := NewAPIServer(apiDeps, opts.APIOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create daemon API server: %w", err)
	}

	return &Daemon{
		logger:     deps.Logger.Named("daemon"),
		apiServer:  apiServer,
		watcher:    deps.Watcher,
		logChanges: opts.LogChanges,
	}, nil
}

// Run starts the watcher and the API server, and blocks until ctx is canceled or either of them fails.
// Cancellation is a clean shutdown and returns nil.
func (d *Daemon) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.watcher.Run(ctx)
	})

	g.Go(func() error {
		return d.apiServer.Start(ctx)
	})

	if d.logChanges {
		events, unsubscribe := d.watcher.Subscribe()
		g.Go(func() error {
			defer unsubscribe()
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					d.logger.Info("Config file changed", "path", ev.Path, "op", ev.Op)
				}
			}
		})
	}

	d.logger.Info("Daemon started")

	err := g.Wait()
	if err != nil && !stdErrors.Is(err, context.Canceled) {
		d.logger.Error("Daemon stopped", "error", err)
		return err
	}

	d.logger.Info("Daemon stopped")
	return nil
}
