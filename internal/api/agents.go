package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/errors"
)

// AgentsDefaultsResponse is the response for GET /agents/defaults.
type AgentsDefaultsResponse struct {
	Body struct {
		Defaults *config.AgentsDefaults `doc:"Agent defaults, null when the document has no agents section" json:"defaults"`
	}
}

// SaveAgentsDefaultsRequest is the request for PUT /agents/defaults.
type SaveAgentsDefaultsRequest struct {
	Strict bool                  `doc:"Reject defaults without a primary model or with zero concurrency limits" query:"strict"`
	Body   config.AgentsDefaults `doc:"Agent defaults"`
}

// RegisterAgentsRoutes sets up the agent defaults API endpoints.
func RegisterAgentsRoutes(routerAPI huma.API, store contracts.AgentsStore, apiPathPrefix string) {
	agentsAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Agents"}

	huma.Register(
		agentsAPI,
		huma.Operation{
			OperationID: "getAgentsDefaults",
			Method:      http.MethodGet,
			Path:        "/defaults",
			Summary:     "Get the agent defaults",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*AgentsDefaultsResponse, error) {
			return handleGetAgentsDefaults(store)
		},
	)

	huma.Register(
		agentsAPI,
		huma.Operation{
			OperationID:   "saveAgentsDefaults",
			Method:        http.MethodPut,
			Path:          "/defaults",
			Summary:       "Replace the agent defaults",
			Tags:          tags,
			DefaultStatus: http.StatusNoContent,
		},
		func(ctx context.Context, input *SaveAgentsDefaultsRequest) (*struct{}, error) {
			return handleSaveAgentsDefaults(store, input)
		},
	)
}

func handleGetAgentsDefaults(store contracts.AgentsStore) (*AgentsDefaultsResponse, error) {
	defaults, err := store.AgentsDefaults()
	if err != nil {
		return nil, err
	}

	resp := &AgentsDefaultsResponse{}
	resp.Body.Defaults = defaults

	return resp, nil
}

func handleSaveAgentsDefaults(store contracts.AgentsStore, input *SaveAgentsDefaultsRequest) (*struct{}, error) {
	if input.Strict {
		if err := input.Body.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrBadRequest, err)
		}
	}

	if err := store.SaveAgentsDefaults(input.Body); err != nil {
		return nil, err
	}

	return nil, nil
}
