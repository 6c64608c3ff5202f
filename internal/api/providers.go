package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/errors"
)

// ProvidersResponse is the response for GET /providers.
type ProvidersResponse struct {
	Body struct {
		Providers map[string]config.Provider `doc:"Configured providers keyed by ID" json:"providers"`
	}
}

// ProviderRequest identifies a provider.
type ProviderRequest struct {
	ID string `doc:"Provider ID" example:"openai" path:"id"`
}

// ProviderResponse is the response for GET /providers/{id}.
type ProviderResponse struct {
	Body config.Provider
}

// ProviderSaveRequest is the request for POST and PUT /providers/{id}.
type ProviderSaveRequest struct {
	ID     string          `doc:"Provider ID"                                            example:"openai" path:"id"`
	Strict bool            `doc:"Reject providers that are incomplete (no key, no models)"                  query:"strict"`
	Body   config.Provider `doc:"Provider configuration"`
}

// ProviderResultResponse reports what a provider change did.
type ProviderResultResponse struct {
	Body struct {
		ID     string              `doc:"Provider ID"            json:"id"`
		Result config.UpsertResult `doc:"Outcome of the change" enum:"created,updated,deleted,noop" json:"result"`
	}
}

// RegisterProviderRoutes sets up the model provider API endpoints.
func RegisterProviderRoutes(routerAPI huma.API, store contracts.ProviderStore, apiPathPrefix string) {
	providersAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Providers"}

	huma.Register(
		providersAPI,
		huma.Operation{
			OperationID: "listProviders",
			Method:      http.MethodGet,
			Summary:     "List model providers",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*ProvidersResponse, error) {
			return handleListProviders(store)
		},
	)

	huma.Register(
		providersAPI,
		huma.Operation{
			OperationID: "getProvider",
			Method:      http.MethodGet,
			Path:        "/{id}",
			Summary:     "Get a model provider",
			Tags:        tags,
		},
		func(ctx context.Context, input *ProviderRequest) (*ProviderResponse, error) {
			return handleGetProvider(store, input.ID)
		},
	)

	huma.Register(
		providersAPI,
		huma.Operation{
			OperationID: "addProvider",
			Method:      http.MethodPost,
			Path:        "/{id}",
			Summary:     "Add or replace a model provider",
			Tags:        tags,
		},
		func(ctx context.Context, input *ProviderSaveRequest) (*ProviderResultResponse, error) {
			return handleAddProvider(store, input)
		},
	)

	huma.Register(
		providersAPI,
		huma.Operation{
			OperationID:   "updateProvider",
			Method:        http.MethodPut,
			Path:          "/{id}",
			Summary:       "Update an existing model provider",
			Tags:          tags,
			DefaultStatus: http.StatusNoContent,
		},
		func(ctx context.Context, input *ProviderSaveRequest) (*struct{}, error) {
			return handleUpdateProvider(store, input)
		},
	)

	huma.Register(
		providersAPI,
		huma.Operation{
			OperationID: "deleteProvider",
			Method:      http.MethodDelete,
			Path:        "/{id}",
			Summary:     "Delete a model provider",
			Tags:        tags,
		},
		func(ctx context.Context, input *ProviderRequest) (*ProviderResultResponse, error) {
			return handleDeleteProvider(store, input.ID)
		},
	)
}

func handleListProviders(store contracts.ProviderStore) (*ProvidersResponse, error) {
	providers, err := store.Providers()
	if err != nil {
		return nil, err
	}

	resp := &ProvidersResponse{}
	resp.Body.Providers = providers

	return resp, nil
}

func handleGetProvider(store contracts.ProviderStore, id string) (*ProviderResponse, error) {
	p, err := store.Provider(id)
	if err != nil {
		return nil, err
	}

	return &ProviderResponse{Body: p}, nil
}

func handleAddProvider(store contracts.ProviderStore, input *ProviderSaveRequest) (*ProviderResultResponse, error) {
	if err := checkProvider(input); err != nil {
		return nil, err
	}

	result, err := store.AddProvider(input.ID, input.Body)
	if err != nil {
		return nil, err
	}

	return providerResult(input.ID, result), nil
}

func handleUpdateProvider(store contracts.ProviderStore, input *ProviderSaveRequest) (*struct{}, error) {
	if err := checkProvider(input); err != nil {
		return nil, err
	}

	if err := store.UpdateProvider(input.ID, input.Body); err != nil {
		return nil, err
	}

	return nil, nil
}

func handleDeleteProvider(store contracts.ProviderStore, id string) (*ProviderResultResponse, error) {
	result, err := store.DeleteProvider(id)
	if err != nil {
		return nil, err
	}

	return providerResult(id, result), nil
}

func checkProvider(input *ProviderSaveRequest) error {
	if !input.Strict {
		return nil
	}

	if err := input.Body.Validate(); err != nil {
		return errors.NewErrInvalidProvider(err.Error())
	}

	return nil
}

func providerResult(id string, result config.UpsertResult) *ProviderResultResponse {
	resp := &ProviderResultResponse{}
	resp.Body.ID = id
	resp.Body.Result = result

	return resp
}
