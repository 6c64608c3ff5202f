package daemon

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/api"
	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/errors"
)

// APIServer manages the HTTP API for the daemon.
// NewAPIServer should be used to create instances of APIServer.
type APIServer struct {
	// Logger for API server operations.
	logger hclog.Logger

	// Service persists the config document.
	service contracts.ConfigService

	// Notifier delivers config file change events to the event stream.
	notifier contracts.ChangeNotifier

	// Addr specifies the network address to bind.
	addr string

	// CORS configuration for cross-origin requests.
	cors CORSConfig

	// ShutdownTimeout specifies how long to wait for graceful shutdown.
	shutdownTimeout time.Duration
}

// NewAPIServer creates a new API server with the provided dependencies and options.
// Applies default options first, then user-provided options to ensure all fields have valid values.
func NewAPIServer(deps APIDependencies, opt ...APIOption) (*APIServer, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies for API server: %w", err)
	}

	apiOpts, err := NewAPIOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid API options: %w", err)
	}

	return &APIServer{
		logger:          deps.Logger.Named("api"),
		service:         deps.Service,
		notifier:        deps.Notifier,
		addr:            deps.Addr,
		cors:            apiOpts.CORS,
		shutdownTimeout: apiOpts.ShutdownTimeout,
	}, nil
}

// Handler builds the router serving the API.
func (a *APIServer) Handler() (http.Handler, error) {
	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)

	if a.cors.Enabled {
		a.applyCORS(mux)
	}

	router := humachi.New(mux, api.NewConfig("clawconf", cmd.Version()))

	// Configure the error handling wrapping.
	huma.NewErrorWithContext = errorHandler(a.logger)

	prefix, err := api.RegisterRoutes(router, a.service, a.notifier)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Registered API routes", "prefix", prefix)

	return mux, nil
}

// Start starts the API server and blocks until the context is canceled or an error occurs.
func (a *APIServer) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	// Bind before serving so address problems are reported to the caller straight away.
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on '%s': %w", a.addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting API server", "address", ln.Addr().String(), "config", a.service.Path())
		if err := srv.Serve(ln); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		a.logger.Info("Shutting down API server...")
		// Open event streams only end when their request context does, so fall back to Close.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("Graceful shutdown timed out, closing connections", "error", err)
			_ = srv.Close()
		}
		<-errCh
		a.logger.Info("Shutdown complete")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// applyCORS installs go-chi/cors on mux using the configured settings.
func (a *APIServer) applyCORS(mux *chi.Mux) {
	opts := corsOptions(a.cors)
	a.logger.Info("Enabling CORS", "origins", opts.AllowedOrigins, "credentials", opts.AllowCredentials)
	mux.Use(cors.Handler(opts))
}

// corsOptions converts c to go-chi/cors options without modifying c.
// A "*" origin allows every origin and disables credentials, which browsers reject alongside a wildcard.
func corsOptions(c CORSConfig) cors.Options {
	opts := cors.Options{
		AllowedMethods:   c.AllowMethods,
		AllowedHeaders:   c.AllowedHeaders,
		ExposedHeaders:   c.ExposedHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           int(c.MaxAge.Seconds()),
	}

	origins := make([]string, 0, len(c.AllowOrigins))
	for _, origin := range c.AllowOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			opts.AllowedOrigins = []string{"*"}
			opts.AllowCredentials = false
			return opts
		}
		origins = append(origins, origin)
	}
	opts.AllowedOrigins = origins

	return opts
}

// errorMapping ties a domain error to the HTTP status it is reported with.
type errorMapping struct {
	target error
	status int

	// message replaces the error text in the response. Only server-side failures set it;
	// those are logged with the full error instead of exposing it.
	message string
}

// errorMappings is checked in order, so a bad request wrapping a parse failure stays a 400.
// Errors added to internal/errors need an entry here, otherwise they are reported as 500.
var errorMappings = []errorMapping{
	{target: errors.ErrBadRequest, status: http.StatusBadRequest},
	{target: errors.ErrInvalidProvider, status: http.StatusBadRequest},
	{target: errors.ErrConfigNotFound, status: http.StatusNotFound},
	{target: errors.ErrFileNotFound, status: http.StatusNotFound},
	{target: errors.ErrProviderNotFound, status: http.StatusNotFound},
	{target: errors.ErrConfigPathNotFound, status: http.StatusInternalServerError, message: "Configuration path not found"},
	{target: errors.ErrRead, status: http.StatusInternalServerError, message: "Failed to read configuration"},
	{target: errors.ErrParse, status: http.StatusInternalServerError, message: "Failed to parse configuration"},
	{target: errors.ErrSerialize, status: http.StatusInternalServerError, message: "Failed to serialize configuration"},
	{target: errors.ErrWrite, status: http.StatusInternalServerError, message: "Failed to write configuration"},
	{target: errors.ErrIO, status: http.StatusInternalServerError, message: "IO error"},
}

// lookupError returns the first mapping err matches.
func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if stdErrors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

// isDomainError reports whether err wraps an error listed in errorMappings.
func isDomainError(err error) bool {
	_, ok := lookupError(err)
	return ok
}

// mapError converts err to the huma status error sent to the client.
// Client errors carry the error text, server errors a fixed message.
func mapError(logger hclog.Logger, err error) huma.StatusError {
	m, ok := lookupError(err)
	if !ok {
		logger.Error("Unexpected error handling config request", "error", err)
		return huma.Error500InternalServerError("Internal server error", err)
	}

	if m.message == "" {
		return huma.NewError(m.status, err.Error())
	}

	logger.Error(m.message, "error", err)
	return huma.NewError(m.status, m.message, err)
}

// errorHandler wraps error handling for the application when converting to API friendly errors.
// Errors raised by Huma itself (e.g. request validation) keep the status Huma chose,
// everything else is resolved through mapError.
func errorHandler(logger hclog.Logger) func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
	return func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		switch len(errs) {
		case 0:
			return huma.NewError(status, msg)
		case 1:
			if status < http.StatusInternalServerError && !isDomainError(errs[0]) {
				return huma.NewError(status, msg, errs...)
			}
			return mapError(logger, errs[0])
		default:
			combinedErr := stdErrors.Join(errs...)
			if status < http.StatusInternalServerError && !isDomainError(combinedErr) {
				return huma.NewError(status, msg, errs...)
			}
			return mapError(logger, combinedErr)
		}
	}
}
