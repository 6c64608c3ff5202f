package daemon

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/settings"
)

// APIDependencies are the collaborators the API server needs to serve requests.
// NewAPIDependencies should be used to create instances of APIDependencies.
type APIDependencies struct {
	// Addr is the host:port to listen on, e.g. "127.0.0.1:18790".
	Addr string

	// Service backs every config, provider, model, agents and backup route.
	Service contracts.ConfigService

	// Notifier feeds the config change event stream.
	Notifier contracts.ChangeNotifier

	Logger hclog.Logger
}

// NewAPIDependencies assembles APIDependencies and validates them.
func NewAPIDependencies(
	logger hclog.Logger,
	service contracts.ConfigService,
	notifier contracts.ChangeNotifier,
	addr string,
) (APIDependencies, error) {
	deps := APIDependencies{
		Addr:     addr,
		Service:  service,
		Notifier: notifier,
		Logger:   logger,
	}

	if err := deps.Validate(); err != nil {
		return APIDependencies{}, err
	}

	return deps, nil
}

// Validate checks the address first, then reports the first nil dependency.
func (d APIDependencies) Validate() error {
	if err := settings.ValidateAddr(d.Addr); err != nil {
		return fmt.Errorf("invalid API address '%s': %w", d.Addr, err)
	}

	return requireNonNil(
		required{"config service", d.Service},
		required{"change notifier", d.Notifier},
		required{"logger", d.Logger},
	)
}
