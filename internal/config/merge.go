package config

import (
	"cmp"
	"encoding/json"
	"maps"
)

// Merge combines two documents section by section: every top-level section present in update replaces the
// one in existing, and every section update leaves out is carried over from existing unchanged.
// Sections are never merged internally.
func Merge(existing Config, update Config) Config {
	merged := Config{
		Meta:     cmp.Or(update.Meta, existing.Meta),
		Wizard:   cmp.Or(update.Wizard, existing.Wizard),
		Models:   cmp.Or(update.Models, existing.Models),
		Agents:   cmp.Or(update.Agents, existing.Agents),
		Auth:     cmp.Or(update.Auth, existing.Auth),
		Messages: cmp.Or(update.Messages, existing.Messages),
		Commands: cmp.Or(update.Commands, existing.Commands),
		Gateway:  cmp.Or(update.Gateway, existing.Gateway),
		Skills:   cmp.Or(update.Skills, existing.Skills),
	}

	if len(existing.Extra) > 0 || len(update.Extra) > 0 {
		merged.Extra = maps.Clone(existing.Extra)
		if merged.Extra == nil {
			merged.Extra = make(map[string]json.RawMessage, len(update.Extra))
		}
		maps.Copy(merged.Extra, update.Extra)
	}

	return merged
}
