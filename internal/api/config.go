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

// ConfigResponse is the response for GET /config.
type ConfigResponse struct {
	Body config.Config
}

// SaveConfigRequest is the request for PUT /config.
// The body is a (partial) openclaw.json document; the top-level sections it contains replace those on disk.
type SaveConfigRequest struct {
	RawBody []byte `contentType:"application/json" doc:"Top-level sections to save"`
}

// ConfigPathResponse is the response for GET /config/path.
type ConfigPathResponse struct {
	Body struct {
		Path string `doc:"Location of the config file" example:"/home/user/.openclaw/openclaw.json" json:"path"`
	}
}

// ConfigExistsResponse is the response for GET /config/exists.
type ConfigExistsResponse struct {
	Body struct {
		Exists bool `doc:"Whether the config file is present" json:"exists"`
	}
}

// ConfigValidationResponse is the response for GET /config/validation.
type ConfigValidationResponse struct {
	Body struct {
		Valid  bool                     `doc:"Whether the config file matches the document schema" json:"valid"`
		Issues []config.ValidationIssue `doc:"Schema violations, empty when valid"                 json:"issues"`
	}
}

// RegisterConfigRoutes sets up the config document API endpoints.
func RegisterConfigRoutes(routerAPI huma.API, store contracts.ConfigStore, apiPathPrefix string) {
	configAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Config"}

	huma.Register(
		configAPI,
		huma.Operation{
			OperationID: "getConfig",
			Method:      http.MethodGet,
			Summary:     "Get the config document",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*ConfigResponse, error) {
			return handleGetConfig(store)
		},
	)

	huma.Register(
		configAPI,
		huma.Operation{
			OperationID:   "saveConfig",
			Method:        http.MethodPut,
			Summary:       "Save top-level sections of the config document",
			Description:   "Sections present in the body replace the stored sections; all other sections are kept.",
			Tags:          tags,
			DefaultStatus: http.StatusNoContent,

			// The raw body is checked by config.Decode against the document schema.
			SkipValidateBody: true,
		},
		func(ctx context.Context, input *SaveConfigRequest) (*struct{}, error) {
			return handleSaveConfig(store, input.RawBody)
		},
	)

	huma.Register(
		configAPI,
		huma.Operation{
			OperationID: "getConfigPath",
			Method:      http.MethodGet,
			Path:        "/path",
			Summary:     "Get the location of the config file",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*ConfigPathResponse, error) {
			return handleConfigPath(store)
		},
	)

	huma.Register(
		configAPI,
		huma.Operation{
			OperationID: "configExists",
			Method:      http.MethodGet,
			Path:        "/exists",
			Summary:     "Check whether the config file exists",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*ConfigExistsResponse, error) {
			return handleConfigExists(store)
		},
	)

	huma.Register(
		configAPI,
		huma.Operation{
			OperationID: "validateConfig",
			Method:      http.MethodGet,
			Path:        "/validation",
			Summary:     "Validate the config file against the document schema",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*ConfigValidationResponse, error) {
			return handleValidateConfig(store)
		},
	)
}

func handleGetConfig(store contracts.ConfigStore) (*ConfigResponse, error) {
	cfg, err := store.Read()
	if err != nil {
		return nil, err
	}

	return &ConfigResponse{Body: cfg}, nil
}

func handleSaveConfig(store contracts.ConfigStore, body []byte) (*struct{}, error) {
	cfg, err := config.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBadRequest, err)
	}

	if err := store.Write(cfg); err != nil {
		return nil, err
	}

	return nil, nil
}

func handleConfigPath(store contracts.ConfigStore) (*ConfigPathResponse, error) {
	resp := &ConfigPathResponse{}
	resp.Body.Path = store.Path()

	return resp, nil
}

func handleConfigExists(store contracts.ConfigStore) (*ConfigExistsResponse, error) {
	resp := &ConfigExistsResponse{}
	resp.Body.Exists = store.Exists()

	return resp, nil
}

func handleValidateConfig(store contracts.ConfigStore) (*ConfigValidationResponse, error) {
	issues, err := store.Validate()
	if err != nil {
		return nil, err
	}

	resp := &ConfigValidationResponse{}
	resp.Body.Valid = len(issues) == 0
	resp.Body.Issues = issues
	if resp.Body.Issues == nil {
		resp.Body.Issues = []config.ValidationIssue{}
	}

	return resp, nil
}
