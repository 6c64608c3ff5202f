package config

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Model tiers used to group models in the editor.
const (
	TierFast     = "fast"
	TierBalanced = "balanced"
	TierPowerful = "powerful"
	TierOther    = "other"
)

// unknownProviderID is reported by ParseModelRef for references without a provider part.
const unknownProviderID = "unknown"

// AvailableModel is a model offered by one of the configured providers.
type AvailableModel struct {
	// Ref is the model reference in 'provider/model' form.
	Ref        string    `json:"ref"        yaml:"ref"`
	ProviderID string    `json:"providerId" yaml:"providerId"`
	Model      ModelInfo `json:"model"      yaml:"model"`
}

// ModelRef joins a provider ID and a model ID into a 'provider/model' reference.
func ModelRef(providerID string, modelID string) string {
	return fmt.Sprintf("%s/%s", providerID, modelID)
}

// ParseModelRef splits a 'provider/model' reference at the first '/'.
// Model IDs may themselves contain '/'. A reference without a '/' is attributed to provider 'unknown'.
func ParseModelRef(ref string) (providerID string, modelID string) {
	providerID, modelID, found := strings.Cut(ref, "/")
	if !found {
		return unknownProviderID, ref
	}
	return providerID, modelID
}

// AvailableModels flattens every provider's models into one list ordered by reference.
func AvailableModels(providers map[string]Provider) []AvailableModel {
	var models []AvailableModel
	for id, p := range providers {
		for _, m := range p.Models {
			models = append(models, AvailableModel{
				Ref:        ModelRef(id, m.ID),
				ProviderID: id,
				Model:      m,
			})
		}
	}

	slices.SortFunc(models, func(a, b AvailableModel) int {
		return cmp.Compare(a.Ref, b.Ref)
	})

	return models
}

// GroupModelsByTier buckets models by their tier, keeping input order within a bucket.
// The fast, balanced, powerful and other buckets are always present; models without a tier go to 'other'.
func GroupModelsByTier(models []ModelInfo) map[string][]ModelInfo {
	groups := map[string][]ModelInfo{
		TierFast:     {},
		TierBalanced: {},
		TierPowerful: {},
		TierOther:    {},
	}

	for _, m := range models {
		tier := TierOther
		if m.Tier != nil && strings.TrimSpace(*m.Tier) != "" {
			tier = *m.Tier
		}
		groups[tier] = append(groups[tier], m)
	}

	return groups
}
