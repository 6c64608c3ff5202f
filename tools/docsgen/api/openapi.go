//go:build docsgen_api
// +build docsgen_api

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/api"
	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/perms"
	"github.com/clawdesk/clawconf/internal/watch"
)

// specPath is where the OpenAPI document is written, relative to the repository root.
const specPath = "./docs/api/openapi.yaml"

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "clawconf.docsgen.api",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	size, err := run(logger, specPath)
	if err != nil {
		logger.Error("OpenAPI generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("OpenAPI spec generated", "path", specPath, "size", fmt.Sprintf("%d bytes", size))
}

// run builds the router the daemon serves and writes its OpenAPI document to out.
// Routes need a service and a watcher to register, but nothing is read or watched,
// so both point into a scratch directory.
func run(logger hclog.Logger, out string) (int, error) {
	scratch, err := os.MkdirTemp("", "clawconf-docsgen-")
	if err != nil {
		return 0, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	configPath := filepath.Join(scratch, "openclaw.json")

	svc, err := config.NewService(logger, config.WithConfigPath(configPath))
	if err != nil {
		return 0, fmt.Errorf("failed to create config service: %w", err)
	}

	watcher, err := watch.NewWatcher(logger, configPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create config watcher: %w", err)
	}

	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)
	router := humachi.New(mux, api.NewConfig("clawconf", cmd.Version()))

	prefix, err := api.RegisterRoutes(router, svc, watcher)
	if err != nil {
		return 0, fmt.Errorf("failed to register API routes: %w", err)
	}
	logger.Debug("Routes registered", "prefix", prefix)

	spec, err := router.OpenAPI().YAML()
	if err != nil {
		return 0, fmt.Errorf("failed to render OpenAPI YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), perms.RegularDir); err != nil {
		return 0, fmt.Errorf("failed to create docs directory: %w", err)
	}
	if err := os.WriteFile(out, spec, perms.RegularFile); err != nil {
		return 0, fmt.Errorf("failed to write '%s': %w", out, err)
	}

	return len(spec), nil
}
