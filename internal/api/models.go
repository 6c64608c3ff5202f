package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
)

// ModelsResponse is the response for GET /models.
type ModelsResponse struct {
	Body struct {
		Models []config.AvailableModel `doc:"Models offered by the configured providers, ordered by reference" json:"models"`
	}
}

// RegisterModelRoutes sets up the endpoint listing every model the configured providers offer.
func RegisterModelRoutes(routerAPI huma.API, store contracts.ProviderStore, apiPathPrefix string) {
	modelsAPI := huma.NewGroup(routerAPI, apiPathPrefix)

	huma.Register(
		modelsAPI,
		huma.Operation{
			OperationID: "listModels",
			Method:      http.MethodGet,
			Summary:     "List models across all providers",
			Description: "Model references are in 'provider/model' form, as used by the agent defaults.",
			Tags:        []string{"Models"},
		},
		func(ctx context.Context, _ *struct{}) (*ModelsResponse, error) {
			return handleListModels(store)
		},
	)
}

func handleListModels(store contracts.ProviderStore) (*ModelsResponse, error) {
	providers, err := store.Providers()
	if err != nil {
		return nil, err
	}

	resp := &ModelsResponse{}
	resp.Body.Models = config.AvailableModels(providers)
	if resp.Body.Models == nil {
		resp.Body.Models = []config.AvailableModel{}
	}

	return resp, nil
}
