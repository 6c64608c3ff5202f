package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/printer"
)

// ValidateCmd checks the config file against the document schema.
// NOTE: Use NewValidateCmd to create a ValidateCmd.
type ValidateCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader
	format        cmd.OutputFormat
}

// NewValidateCmd creates the validate command.
func NewValidateCmd(baseCmd *cmd.BaseCmd, opt ...options.CmdOption) (*cobra.Command, error) {
	opts, err := options.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ValidateCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the config file against the document schema",
		Long:  "Check the config file against the document schema. Exits with an error when issues are found.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	addFormatFlag(cobraCmd, &c.format)

	return cobraCmd, nil
}

func (c *ValidateCmd) run(cobraCmd *cobra.Command, _ []string) error {
	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[printer.ValidationResult](
		cobraCmd.OutOrStdout(),
		c.format,
		&printer.ValidationPrinter{},
	)
	if err != nil {
		return err
	}

	issues, err := svc.Validate()
	if err != nil {
		return handler.HandleError(err)
	}

	result := printer.NewValidationResult(svc.Path(), issues)
	if err := handler.HandleResult(result); err != nil {
		return err
	}

	if !result.Valid {
		return fmt.Errorf("validation failed with %d issue(s)", len(result.Issues))
	}

	return nil
}
