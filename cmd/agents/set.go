package agents

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
	"github.com/clawdesk/clawconf/internal/errors"
)

const (
	flagFile                   = "file"
	flagPrimary                = "primary"
	flagFast                   = "fast"
	flagBalanced               = "balanced"
	flagPowerful               = "powerful"
	flagWorkspace              = "workspace"
	flagMaxConcurrent          = "max-concurrent"
	flagSubagentsMaxConcurrent = "subagents-max-concurrent"
	flagSkipValidation         = "skip-validation"
)

// SetCmd saves the agent defaults.
// NOTE: Use NewSetCmd to create a SetCmd.
type SetCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	stdin         io.Reader

	file                   string
	primary                string
	fast                   string
	balanced               string
	powerful               string
	workspace              string
	maxConcurrent          uint32
	subagentsMaxConcurrent uint32
	skipValidation         bool
}

// NewSetCmd creates the set command for agent defaults.
func NewSetCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SetCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
		stdin:         opts.Stdin,
	}

	cobraCmd := &cobra.Command{
		Use:   "set",
		Short: "Save the agent defaults",
		Long: `Save the agent defaults.

Either replace them with a document (--file, JSON or YAML), or change individual values with flags.
Flags are applied to the current defaults, or to the built-in defaults (6 agents, 12 subagents)
when the config file has none. The result needs a primary model unless --skip-validation is given.`,
		Example: `  # Pick models by role
  clawconf agents set --primary openai/gpt-4o --fast openai/gpt-4o-mini

  # Replace the defaults from a file
  clawconf agents set --file defaults.yaml`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cobraCmd.Flags().StringVar(&c.file, flagFile, "", "Agent defaults document (JSON or YAML), '-' reads standard input")
	cobraCmd.Flags().StringVar(&c.primary, flagPrimary, "", "Primary model reference (provider/model)")
	cobraCmd.Flags().StringVar(&c.fast, flagFast, "", "Fast model reference (provider/model)")
	cobraCmd.Flags().StringVar(&c.balanced, flagBalanced, "", "Balanced model reference (provider/model)")
	cobraCmd.Flags().StringVar(&c.powerful, flagPowerful, "", "Powerful model reference (provider/model)")
	cobraCmd.Flags().StringVar(&c.workspace, flagWorkspace, "", "Agent workspace directory")
	cobraCmd.Flags().Uint32Var(&c.maxConcurrent, flagMaxConcurrent, 0, "Maximum number of concurrent agents")
	cobraCmd.Flags().Uint32Var(
		&c.subagentsMaxConcurrent,
		flagSubagentsMaxConcurrent,
		0,
		"Maximum number of concurrent subagents",
	)
	cobraCmd.Flags().BoolVar(&c.skipValidation, flagSkipValidation, false, "Save the defaults without checking them first")

	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagPrimary)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagFast)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagBalanced)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagPowerful)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagWorkspace)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagMaxConcurrent)
	cobraCmd.MarkFlagsMutuallyExclusive(flagFile, flagSubagentsMaxConcurrent)

	return cobraCmd, nil
}

func (c *SetCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	var defaults clawconfig.AgentsDefaults
	if cobraCmd.Flags().Changed(flagFile) {
		defaults, err = c.readFile()
	} else {
		defaults, err = c.applyFlags(cobraCmd, svc)
	}
	if err != nil {
		return err
	}

	if !c.skipValidation {
		if err := defaults.Validate(); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrBadRequest, err)
		}
	}

	if err := svc.SaveAgentsDefaults(defaults); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Agent defaults saved to %s\n", svc.Path())

	return nil
}

func (c *SetCmd) readFile() (clawconfig.AgentsDefaults, error) {
	data, err := cmd.ReadInput(c.file, c.stdin)
	if err != nil {
		return clawconfig.AgentsDefaults{}, err
	}

	var d clawconfig.AgentsDefaults
	if json.Valid(data) {
		if err := json.Unmarshal(data, &d); err != nil {
			return clawconfig.AgentsDefaults{}, fmt.Errorf("failed to parse agent defaults JSON: %w", err)
		}
		return d, nil
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return clawconfig.AgentsDefaults{}, fmt.Errorf("failed to parse agent defaults YAML: %w", err)
	}

	return d, nil
}

// applyFlags starts from the stored defaults (or the built-in ones) and overlays every flag that was set.
func (c *SetCmd) applyFlags(cobraCmd *cobra.Command, store contracts.AgentsStore) (clawconfig.AgentsDefaults, error) {
	flags := cobraCmd.Flags()

	changed := false
	for _, name := range []string{
		flagPrimary, flagFast, flagBalanced, flagPowerful,
		flagWorkspace, flagMaxConcurrent, flagSubagentsMaxConcurrent,
	} {
		if flags.Changed(name) {
			changed = true
			break
		}
	}
	if !changed {
		return clawconfig.AgentsDefaults{}, fmt.Errorf("either --%s or at least one value flag must be provided", flagFile)
	}

	current, err := store.AgentsDefaults()
	if err != nil {
		return clawconfig.AgentsDefaults{}, err
	}

	d := clawconfig.DefaultAgentsDefaults()
	if current != nil {
		d = *current
	}

	if d.Model == nil {
		d.Model = &clawconfig.ModelConfig{}
	} else {
		model := *d.Model
		d.Model = &model
	}

	if flags.Changed(flagPrimary) {
		d.Model.Primary = c.primary
	}
	if flags.Changed(flagFast) {
		d.Model.Fast = optional(c.fast)
	}
	if flags.Changed(flagBalanced) {
		d.Model.Balanced = optional(c.balanced)
	}
	if flags.Changed(flagPowerful) {
		d.Model.Powerful = optional(c.powerful)
	}
	if flags.Changed(flagWorkspace) {
		d.Workspace = optional(c.workspace)
	}
	if flags.Changed(flagMaxConcurrent) {
		v := c.maxConcurrent
		d.MaxConcurrent = &v
	}
	if flags.Changed(flagSubagentsMaxConcurrent) {
		d.Subagents = &clawconfig.SubagentsConfig{MaxConcurrent: c.subagentsMaxConcurrent}
	}

	return d, nil
}

// optional maps an empty flag value to nil so it can be used to clear a setting.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
