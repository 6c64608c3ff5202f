package config

import "encoding/json"

// Config represents the openclaw.json document.
// Every top-level section is optional; a nil section is omitted from the file.
// Top-level keys that this package does not model are kept in Extra so they survive a read/write cycle.
type Config struct {
	Meta     *ConfigMeta     `json:"meta,omitempty"     yaml:"meta,omitempty"`
	Wizard   *WizardConfig   `json:"wizard,omitempty"   yaml:"wizard,omitempty"`
	Models   *ModelsConfig   `json:"models,omitempty"   yaml:"models,omitempty"`
	Agents   *AgentsConfig   `json:"agents,omitempty"   yaml:"agents,omitempty"`
	Auth     *AuthConfig     `json:"auth,omitempty"     yaml:"auth,omitempty"`
	Messages *MessagesConfig `json:"messages,omitempty" yaml:"messages,omitempty"`
	Commands *CommandsConfig `json:"commands,omitempty" yaml:"commands,omitempty"`
	Gateway  *GatewayConfig  `json:"gateway,omitempty"  yaml:"gateway,omitempty"`
	Skills   *SkillsConfig   `json:"skills,omitempty"   yaml:"skills,omitempty"`

	// Extra holds unmodelled top-level sections as raw JSON, keyed by section name.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// ConfigMeta records which runtime version last touched the document.
type ConfigMeta struct {
	LastTouchedVersion *string `json:"lastTouchedVersion,omitempty" yaml:"lastTouchedVersion,omitempty"`
	LastTouchedAt      *string `json:"lastTouchedAt,omitempty"      yaml:"lastTouchedAt,omitempty"`
	Comment            *string `json:"comment,omitempty"            yaml:"comment,omitempty"`
}

// WizardConfig records the last run of the runtime's setup wizard.
type WizardConfig struct {
	LastRunAt      *string `json:"lastRunAt,omitempty"      yaml:"lastRunAt,omitempty"`
	LastRunVersion *string `json:"lastRunVersion,omitempty" yaml:"lastRunVersion,omitempty"`
	LastRunCommand *string `json:"lastRunCommand,omitempty" yaml:"lastRunCommand,omitempty"`
	LastRunMode    *string `json:"lastRunMode,omitempty"    yaml:"lastRunMode,omitempty"`
}

// ModelsConfig holds the model providers known to the runtime.
type ModelsConfig struct {
	// Mode controls how the runtime combines these providers with its built-in catalog, e.g. 'merge'.
	Mode string `json:"mode" yaml:"mode"`

	// Providers is keyed by provider ID, e.g. 'openai'.
	Providers map[string]Provider `json:"providers" yaml:"providers"`
}

// Provider is a named model-serving endpoint the agent runtime can call.
type Provider struct {
	BaseURL string      `json:"baseUrl"          yaml:"baseUrl"`
	APIKey  *string     `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	API     string      `json:"api"              yaml:"api"`
	Models  []ModelInfo `json:"models"           yaml:"models"`
}

// ModelInfo describes one model served by a Provider.
type ModelInfo struct {
	ID            string    `json:"id"             yaml:"id"`
	Name          string    `json:"name"           yaml:"name"`
	Reasoning     bool      `json:"reasoning"      yaml:"reasoning"      required:"false"`
	Input         []string  `json:"input"          yaml:"input"`
	Cost          ModelCost `json:"cost"           yaml:"cost"`
	ContextWindow uint64    `json:"contextWindow"  yaml:"contextWindow"`
	MaxTokens     uint64    `json:"maxTokens"      yaml:"maxTokens"`
	Tier          *string   `json:"tier,omitempty" yaml:"tier,omitempty"`
}

// ModelCost is the per-token pricing of a model.
type ModelCost struct {
	Input      float64  `json:"input"                yaml:"input"`
	Output     float64  `json:"output"               yaml:"output"`
	CacheRead  *float64 `json:"cacheRead,omitempty"  yaml:"cacheRead,omitempty"`
	CacheWrite *float64 `json:"cacheWrite,omitempty" yaml:"cacheWrite,omitempty"`
}

// AgentsConfig wraps the agent defaults section.
type AgentsConfig struct {
	Defaults AgentsDefaults `json:"defaults" yaml:"defaults"`
}

// AgentsDefaults specifies default model selection, concurrency limits, timeouts, and retry/compaction policy.
type AgentsDefaults struct {
	Model         *ModelConfig          `json:"model,omitempty"         yaml:"model,omitempty"`
	Models        map[string]ModelAlias `json:"models"                  yaml:"models"                  required:"false"`
	Workspace     *string               `json:"workspace,omitempty"     yaml:"workspace,omitempty"`
	MaxConcurrent *uint32               `json:"maxConcurrent,omitempty" yaml:"maxConcurrent,omitempty"`
	Subagents     *SubagentsConfig      `json:"subagents,omitempty"     yaml:"subagents,omitempty"`
	Caching       *CachingConfig        `json:"caching,omitempty"       yaml:"caching,omitempty"`
	Timeout       *TimeoutConfig        `json:"timeout,omitempty"       yaml:"timeout,omitempty"`
	Retry         *RetryConfig          `json:"retry,omitempty"         yaml:"retry,omitempty"`
	Compaction    *CompactionConfig     `json:"compaction,omitempty"    yaml:"compaction,omitempty"`
}

// ModelConfig selects models by role. Values are model references in 'provider/model' form.
type ModelConfig struct {
	Primary  string  `json:"primary"            yaml:"primary"`
	Fast     *string `json:"fast,omitempty"     yaml:"fast,omitempty"`
	Balanced *string `json:"balanced,omitempty" yaml:"balanced,omitempty"`
	Powerful *string `json:"powerful,omitempty" yaml:"powerful,omitempty"`
}

// ModelAlias gives a model reference a short alias.
type ModelAlias struct {
	Alias       string  `json:"alias"                 yaml:"alias"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

type SubagentsConfig struct {
	MaxConcurrent uint32 `json:"maxConcurrent" yaml:"maxConcurrent"`
}

type CachingConfig struct {
	Enabled      bool   `json:"enabled"      yaml:"enabled"`
	MaxCacheSize string `json:"maxCacheSize" yaml:"maxCacheSize"`
}

// TimeoutConfig values are in seconds.
type TimeoutConfig struct {
	Request uint64 `json:"request" yaml:"request"`
	Idle    uint64 `json:"idle"    yaml:"idle"`
}

type RetryConfig struct {
	MaxAttempts uint32 `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff     string `json:"backoff"     yaml:"backoff"`
}

type CompactionConfig struct {
	Mode      string   `json:"mode"                yaml:"mode"`
	Threshold *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// AuthConfig holds named authentication profiles.
type AuthConfig struct {
	Profiles map[string]AuthProfile `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

type AuthProfile struct {
	Provider string `json:"provider" yaml:"provider"`
	Mode     string `json:"mode"     yaml:"mode"`
}

// GatewayConfig configures the runtime's optional local control endpoint.
type GatewayConfig struct {
	Port      *uint16            `json:"port,omitempty"      yaml:"port,omitempty"`
	Mode      *string            `json:"mode,omitempty"      yaml:"mode,omitempty"`
	Bind      *string            `json:"bind,omitempty"      yaml:"bind,omitempty"`
	Auth      *GatewayAuthConfig `json:"auth,omitempty"      yaml:"auth,omitempty"`
	Tailscale *TailscaleConfig   `json:"tailscale,omitempty" yaml:"tailscale,omitempty"`
}

type GatewayAuthConfig struct {
	Mode  *string `json:"mode,omitempty"  yaml:"mode,omitempty"`
	Token *string `json:"token,omitempty" yaml:"token,omitempty"`
}

type TailscaleConfig struct {
	Mode        *string `json:"mode,omitempty"        yaml:"mode,omitempty"`
	ResetOnExit *bool   `json:"resetOnExit,omitempty" yaml:"resetOnExit,omitempty"`
}

type MessagesConfig struct {
	AckReactionScope *string `json:"ackReactionScope,omitempty" yaml:"ackReactionScope,omitempty"`
}

type CommandsConfig struct {
	Native       *string `json:"native,omitempty"       yaml:"native,omitempty"`
	NativeSkills *string `json:"nativeSkills,omitempty" yaml:"nativeSkills,omitempty"`
}

type SkillsConfig struct {
	Install *SkillsInstallConfig `json:"install,omitempty" yaml:"install,omitempty"`
}

type SkillsInstallConfig struct {
	NodeManager *string `json:"nodeManager,omitempty" yaml:"nodeManager,omitempty"`
}
