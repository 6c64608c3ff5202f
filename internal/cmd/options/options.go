package options

import (
	"fmt"
	"io"
	"os"

	"github.com/clawdesk/clawconf/internal/cmd"
)

// CmdOption defines a functional option for configuring CmdOptions.
type CmdOption func(*CmdOptions) error

// CmdOptions holds the collaborators a command uses, so tests can substitute them.
type CmdOptions struct {
	// ServiceLoader opens the config persistence service.
	ServiceLoader cmd.ServiceLoader

	// Stdin is read by commands that accept a document on standard input.
	Stdin io.Reader
}

func defaultOptions() CmdOptions {
	return CmdOptions{
		ServiceLoader: cmd.DefaultServiceLoader{},
		Stdin:         os.Stdin,
	}
}

// NewOptions creates CmdOptions with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

// WithServiceLoader sets the loader used to open the config persistence service.
func WithServiceLoader(l cmd.ServiceLoader) CmdOption {
	return func(o *CmdOptions) error {
		if l == nil {
			return fmt.Errorf("service loader cannot be nil")
		}
		o.ServiceLoader = l
		return nil
	}
}

// WithStdin sets the reader used in place of standard input.
func WithStdin(r io.Reader) CmdOption {
	return func(o *CmdOptions) error {
		if r == nil {
			return fmt.Errorf("stdin reader cannot be nil")
		}
		o.Stdin = r
		return nil
	}
}
