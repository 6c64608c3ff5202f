package daemon

// Options contains optional configuration for the daemon.
// NewOptions should be used to create instances of Options.
type Options struct {
	// APIOptions contains functional options passed through to the API server,
	// covering its CORS settings and shutdown timeout.
	APIOptions []APIOption

	// LogChanges controls whether every config file change reported by the watcher
	// is written to the daemon log at info level.
	LogChanges bool
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options starting from the daemon defaults (change logging on, no API options),
// then applies opts in order. Nil options are skipped, and the first option to fail aborts with its error.
func NewOptions(opts ...Option) (Options, error) {
	options := Options{LogChanges: true}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// WithAPIOptions configures the options used to build the API server.
// Each call replaces the API options set by earlier calls instead of appending to them.
func WithAPIOptions(apiOpts ...APIOption) Option {
	return func(o *Options) error {
		o.APIOptions = apiOpts
		return nil
	}
}

// WithLogChanges configures whether config file changes seen by the watcher are logged.
// Subscribers of the event stream receive changes either way.
func WithLogChanges(enabled bool) Option {
	return func(o *Options) error {
		o.LogChanges = enabled
		return nil
	}
}
