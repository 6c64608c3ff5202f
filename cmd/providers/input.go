package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clawdesk/clawconf/internal/cmd"
	clawconfig "github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/errors"
)

// providerInput reads a provider from --file, which holds it as JSON or YAML.
type providerInput struct {
	stdin          io.Reader
	file           string
	skipValidation bool
}

func (i *providerInput) addFlags(cobraCmd *cobra.Command) {
	cobraCmd.Flags().StringVar(&i.file, flagFile, cmd.StdinPath, "Provider document (JSON or YAML), '-' reads standard input")
	cobraCmd.Flags().BoolVar(&i.skipValidation, flagSkipValidation, false, "Save the provider without checking it first")
}

func (i *providerInput) read(id string) (clawconfig.Provider, error) {
	if strings.TrimSpace(id) == "" {
		return clawconfig.Provider{}, errors.NewErrInvalidProvider("provider ID cannot be empty")
	}

	data, err := cmd.ReadInput(i.file, i.stdin)
	if err != nil {
		return clawconfig.Provider{}, err
	}

	p, err := decodeProvider(data)
	if err != nil {
		return clawconfig.Provider{}, err
	}

	if !i.skipValidation {
		if err := p.Validate(); err != nil {
			return clawconfig.Provider{}, errors.NewErrInvalidProvider(err.Error())
		}
	}

	return p, nil
}

// decodeProvider parses a provider document, JSON when the data is valid JSON and YAML otherwise.
func decodeProvider(data []byte) (clawconfig.Provider, error) {
	var p clawconfig.Provider

	if json.Valid(data) {
		if err := json.Unmarshal(data, &p); err != nil {
			return clawconfig.Provider{}, fmt.Errorf("failed to parse provider JSON: %w", err)
		}
		return p, nil
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return clawconfig.Provider{}, fmt.Errorf("failed to parse provider YAML: %w", err)
	}

	return p, nil
}
