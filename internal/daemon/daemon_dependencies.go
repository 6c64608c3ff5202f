package daemon

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/settings"
)

// Dependencies are the collaborators a Daemon cannot run without.
// NewDependencies should be used to create instances of Dependencies.
type Dependencies struct {
	// APIAddr is the host:port the API server binds, e.g. "127.0.0.1:18790".
	APIAddr string

	// Logger is shared with the API server and the watcher, each under its own name.
	Logger hclog.Logger

	// Service persists openclaw.json.
	Service contracts.ConfigService

	// Watcher reports edits to openclaw.json made outside the daemon.
	Watcher contracts.ChangeWatcher
}

// NewDependencies assembles Dependencies and validates them.
func NewDependencies(
	logger hclog.Logger,
	apiAddr string,
	service contracts.ConfigService,
	watcher contracts.ChangeWatcher,
) (Dependencies, error) {
	deps := Dependencies{
		APIAddr: apiAddr,
		Logger:  logger,
		Service: service,
		Watcher: watcher,
	}

	if err := deps.Validate(); err != nil {
		return Dependencies{}, err
	}

	return deps, nil
}

// Validate reports the first missing or malformed dependency.
func (d Dependencies) Validate() error {
	if isNil(d.Logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if err := settings.ValidateAddr(d.APIAddr); err != nil {
		return fmt.Errorf("invalid API address '%s': %w", d.APIAddr, err)
	}

	return requireNonNil(
		required{"config service", d.Service},
		required{"config watcher", d.Watcher},
	)
}

// required pairs a dependency with the name used when it is missing.
type required struct {
	name  string
	value any
}

// requireNonNil returns an error for the first nil dependency, in argument order.
func requireNonNil(deps ...required) error {
	for _, dep := range deps {
		if isNil(dep.value) {
			return fmt.Errorf("%s cannot be nil", dep.name)
		}
	}
	return nil
}

// isNil reports whether v is nil, including a typed nil pointer held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
