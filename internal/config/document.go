package config

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Top-level section names of the openclaw.json document.
const (
	SectionMeta     = "meta"
	SectionWizard   = "wizard"
	SectionModels   = "models"
	SectionAgents   = "agents"
	SectionAuth     = "auth"
	SectionMessages = "messages"
	SectionCommands = "commands"
	SectionGateway  = "gateway"
	SectionSkills   = "skills"
)

// DefaultModelsMode is the mode given to a models section created on demand.
const DefaultModelsMode = "merge"

// configAlias has the fields of Config without its JSON methods.
type configAlias Config

// KnownSections returns the modelled top-level section names in document order.
func KnownSections() []string {
	return []string{
		SectionMeta,
		SectionWizard,
		SectionModels,
		SectionAgents,
		SectionAuth,
		SectionMessages,
		SectionCommands,
		SectionGateway,
		SectionSkills,
	}
}

// MarshalJSON encodes the modelled sections and re-emits any extra sections captured on decode.
func (c Config) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(configAlias(c))
	if err != nil {
		return nil, err
	}

	if len(c.Extra) == 0 {
		return known, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(known, &doc); err != nil {
		return nil, err
	}

	for k, v := range c.Extra {
		if _, ok := doc[k]; ok {
			continue
		}
		doc[k] = v
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes the modelled sections and keeps every other non-null top-level key in Extra.
func (c *Config) UnmarshalJSON(data []byte) error {
	var alias configAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, k := range KnownSections() {
		delete(raw, k)
	}

	extra := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		extra[k] = v
	}

	*c = Config(alias)
	c.Extra = nil
	if len(extra) > 0 {
		c.Extra = extra
	}

	return nil
}

// Sections returns the names of the top-level sections present in the document, modelled ones first in
// document order followed by extra sections in lexical order.
func (c Config) Sections() []string {
	present := map[string]bool{
		SectionMeta:     c.Meta != nil,
		SectionWizard:   c.Wizard != nil,
		SectionModels:   c.Models != nil,
		SectionAgents:   c.Agents != nil,
		SectionAuth:     c.Auth != nil,
		SectionMessages: c.Messages != nil,
		SectionCommands: c.Commands != nil,
		SectionGateway:  c.Gateway != nil,
		SectionSkills:   c.Skills != nil,
	}

	var sections []string
	for _, name := range KnownSections() {
		if present[name] {
			sections = append(sections, name)
		}
	}

	return append(sections, slices.Sorted(maps.Keys(c.Extra))...)
}

// IsEmpty reports whether the document has no sections at all.
func (c Config) IsEmpty() bool {
	return len(c.Sections()) == 0
}

// normalized returns a copy of the config whose required collections are non-nil,
// so the encoded document carries '{}' or '[]' rather than 'null'.
// Sections that need no change are shared with the receiver.
func (c Config) normalized() Config {
	out := c

	if c.Models != nil {
		models := *c.Models
		providers := make(map[string]Provider, len(models.Providers))
		for id, p := range models.Providers {
			providers[id] = p.normalized()
		}
		models.Providers = providers
		out.Models = &models
	}

	if c.Agents != nil {
		agents := *c.Agents
		agents.Defaults = agents.Defaults.normalized()
		out.Agents = &agents
	}

	return out
}

func (p Provider) normalized() Provider {
	out := p
	out.Models = make([]ModelInfo, 0, len(p.Models))
	for _, m := range p.Models {
		if m.Input == nil {
			m.Input = []string{}
		}
		out.Models = append(out.Models, m)
	}
	return out
}

func (d AgentsDefaults) normalized() AgentsDefaults {
	out := d
	if out.Models == nil {
		out.Models = map[string]ModelAlias{}
	}
	return out
}
