package api

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clawdesk/clawconf/internal/contracts"
)

// APIVersion is the version used in the OpenAPI spec and URL paths.
const APIVersion = "v1"

// RegisterRoutes mounts every route under /api/{APIVersion} and returns that prefix.
// The daemon and the OpenAPI generator both build their API through this function.
func RegisterRoutes(
	router huma.API,
	service contracts.ConfigService,
	notifier contracts.ChangeNotifier,
) (string, error) {
	for _, dep := range []struct {
		name  string
		value any
	}{
		{"router", router},
		{"config service", service},
		{"change notifier", notifier},
	} {
		if rv := reflect.ValueOf(dep.value); !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
			return "", fmt.Errorf("%s cannot be nil", dep.name)
		}
	}

	prefix, err := url.JoinPath("/api", APIVersion)
	if err != nil {
		return "", fmt.Errorf("failed to construct API path prefix: %w", err)
	}

	group := huma.NewGroup(router, prefix)

	RegisterConfigRoutes(group, service, "/config")
	RegisterEventRoutes(group, notifier, "/config/events")
	RegisterBackupRoutes(group, service, "/backups")
	RegisterProviderRoutes(group, service, "/providers")
	RegisterModelRoutes(group, service, "/models")
	RegisterAgentsRoutes(group, service, "/agents")

	allowUnknownFields(router.OpenAPI().Components.Schemas)

	return prefix, nil
}

// allowUnknownFields lets request bodies carry keys the API types do not model.
// Huma closes every struct schema by default, while openclaw.json leaves objects open,
// so without this a provider or agents body the config file accepts would be rejected with 422.
// Unknown keys are dropped when the body is decoded; required fields are still enforced.
func allowUnknownFields(registry huma.Registry) {
	for _, schema := range registry.Map() {
		if schema.Type != huma.TypeObject {
			continue
		}
		if allowed, ok := schema.AdditionalProperties.(bool); ok && !allowed {
			schema.AdditionalProperties = true
		}
	}
}
