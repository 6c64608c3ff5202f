package watch

import (
	"fmt"
	"time"
)

// DefaultDebounce is how long the watcher waits for further changes before reporting one.
const DefaultDebounce = 100 * time.Millisecond

// Options contains optional configuration for a Watcher.
// NewOptions should be used to create instances of Options.
type Options struct {
	Debounce time.Duration
}

// Option defines a functional option for configuring Options.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewOptions(opt ...Option) (Options, error) {
	options := Options{
		Debounce: DefaultDebounce,
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// WithDebounce sets how long to wait for further changes before reporting one.
func WithDebounce(d time.Duration) Option {
	return func(o *Options) error {
		if d <= 0 {
			return fmt.Errorf("debounce must be positive, got %v", d)
		}
		o.Debounce = d
		return nil
	}
}
