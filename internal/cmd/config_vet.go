package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/config"
	"github.com/skelgen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Parse the configuration file strictly and check its values.

Unknown fields and invalid layout names are reported as errors.

Examples:
  # Validate ~/.skelgen/config.yaml
  skelgen config vet

  # Validate a specific file
  skelgen config vet --config ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return WrapNotFound(err, "determining config file path")
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return WrapNotFound(
				fmt.Errorf("no configuration file at %s", expanded),
				"run 'skelgen config init' first")
		}
		return fmt.Errorf("reading %s: %w", expanded, err)
	}

	cfg, err := config.ParseStrict(data)
	if err != nil {
		return WrapValidation(err, expanded)
	}

	if err := cfg.Validate(); err != nil {
		return WrapValidation(err, expanded)
	}

	output.Println(output.FormatCheckmark("Configuration valid: " + expanded))

	return nil
}
