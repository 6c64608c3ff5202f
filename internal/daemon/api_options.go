package daemon

import (
	"fmt"
	"net/http"
	"time"
)

// APIOptions holds the tunable settings of the API server.
// NewAPIOptions should be used to create instances of APIOptions.
type APIOptions struct {
	// CORS controls cross-origin access to the API.
	CORS CORSConfig

	// ShutdownTimeout bounds graceful shutdown before open connections are closed.
	ShutdownTimeout time.Duration
}

// CORSConfig holds the Cross-Origin Resource Sharing settings applied by go-chi/cors.
// The editor front end runs in a webview with its own origin, so it needs CORS to reach the daemon.
type CORSConfig struct {
	// Enabled determines whether the CORS middleware is installed at all.
	Enabled bool

	// AllowCredentials indicates whether requests may include cookies or auth headers.
	// It is forced off when AllowOrigins contains "*", since browsers reject that combination.
	AllowCredentials bool

	// AllowedHeaders lists the request headers a cross-origin client may send.
	AllowedHeaders []string

	// AllowMethods lists the HTTP methods permitted for cross-origin requests.
	// Strings match the go-chi/cors API.
	AllowMethods []string

	// AllowOrigins lists the origins allowed to call the API, "*" allows any origin.
	AllowOrigins []string

	// ExposedHeaders lists the response headers a cross-origin client may read.
	ExposedHeaders []string

	// MaxAge is how long a browser may cache a preflight response.
	MaxAge time.Duration
}

// APIOption defines a functional option for configuring APIOptions.
// Options are applied in order, with later options overriding earlier ones.
type APIOption func(*APIOptions) error

// NewAPIOptions creates APIOptions starting from the defaults (CORS disabled but preconfigured for
// the desktop webview, a five second shutdown timeout), then applies opts in order.
// Nil options are skipped, and the first option to fail aborts with its error.
func NewAPIOptions(opts ...APIOption) (APIOptions, error) {
	options := APIOptions{
		CORS:            defaultCORSConfig(),
		ShutdownTimeout: DefaultAPIShutdownTimeout(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return APIOptions{}, err
		}
	}

	return options, nil
}

// corsOption adapts a CORSConfig mutation to an APIOption.
func corsOption(fn func(*CORSConfig) error) APIOption {
	return func(o *APIOptions) error {
		return fn(&o.CORS)
	}
}

// WithCORSEnabled turns CORS handling on or off.
func WithCORSEnabled(enabled bool) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.Enabled = enabled
		return nil
	})
}

// WithCORSAllowOrigins replaces the origins allowed to call the API.
func WithCORSAllowOrigins(origins []string) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.AllowOrigins = origins
		return nil
	})
}

// WithCORSAllowMethods replaces the methods allowed in cross-origin requests.
func WithCORSAllowMethods(methods []string) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.AllowMethods = methods
		return nil
	})
}

// WithCORSAllowHeaders replaces the request headers a cross-origin client may send.
func WithCORSAllowHeaders(headers []string) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.AllowedHeaders = headers
		return nil
	})
}

// WithCORSExposeHeaders sets the response headers a cross-origin client may read.
func WithCORSExposeHeaders(headers []string) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.ExposedHeaders = headers
		return nil
	})
}

// WithCORSAllowCredentials sets whether cookies and auth headers may accompany cross-origin requests.
func WithCORSAllowCredentials(allowed bool) APIOption {
	return corsOption(func(c *CORSConfig) error {
		c.AllowCredentials = allowed
		return nil
	})
}

// WithCORSMaxAge sets the preflight cache duration. Zero disables caching.
func WithCORSMaxAge(maxAge time.Duration) APIOption {
	return corsOption(func(c *CORSConfig) error {
		if maxAge < 0 {
			return fmt.Errorf("CORS max age cannot be negative, got %v", maxAge)
		}
		c.MaxAge = maxAge
		return nil
	})
}

// WithShutdownTimeout sets how long Start waits for in-flight requests when its context ends.
func WithShutdownTimeout(timeout time.Duration) APIOption {
	return func(o *APIOptions) error {
		if timeout <= 0 {
			return fmt.Errorf("shutdown timeout must be positive, got %v", timeout)
		}
		o.ShutdownTimeout = timeout
		return nil
	}
}

// defaultCORSConfig is disabled, but ready for the desktop webview once enabled.
func defaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:   DefaultCORSAllowOrigins(),
		AllowMethods:   DefaultCORSAllowMethods(),
		AllowedHeaders: DefaultCORSAllowHeaders(),
		MaxAge:         DefaultCORSMaxAge(),
	}
}

// DefaultCORSAllowOrigins returns the origins used by the desktop editor's webview.
func DefaultCORSAllowOrigins() []string {
	return []string{
		"tauri://localhost",
		"http://tauri.localhost",
		"https://tauri.localhost",
	}
}

// DefaultCORSAllowHeaders returns the request headers the editor sends.
// Last-Event-ID lets an event stream client resume after reconnecting.
func DefaultCORSAllowHeaders() []string {
	return []string{
		"Accept",
		"Accept-Language",
		"Content-Language",
		"Content-Type",
		"Last-Event-ID",
	}
}

// DefaultCORSAllowMethods returns the HTTP methods the API uses.
func DefaultCORSAllowMethods() []string {
	return []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}
}

// DefaultCORSMaxAge returns the default preflight cache duration.
func DefaultCORSMaxAge() time.Duration {
	return 5 * time.Minute
}

// DefaultAPIShutdownTimeout returns the default graceful shutdown budget.
func DefaultAPIShutdownTimeout() time.Duration {
	return 5 * time.Second
}
