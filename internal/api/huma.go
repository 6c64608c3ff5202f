package api

import "github.com/danielgtaylor/huma/v2"

// NewConfig returns the huma configuration for the clawconf API.
// Responses carry no '$schema' links: the link transformer rebuilds response bodies field by field,
// which would bypass the config document's own JSON encoding and drop its unmodelled sections.
func NewConfig(title string, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.CreateHooks = nil

	return cfg
}
