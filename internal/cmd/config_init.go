package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/config"
	"github.com/skelgen/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file to ~/.skelgen/config.yaml.

The configuration includes:
  - Default output directory for generated skeletons
  - Default layout for 'skelgen gen' without arguments
  - Log timestamp preference

Examples:
  # Initialize configuration
  skelgen config init

  # Overwrite existing configuration
  skelgen config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return WrapNotFound(err, "determining home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return WrapValidation(
			fmt.Errorf("configuration already exists at %s", paths.ConfigFile),
			"use --force to overwrite")
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", paths.HomeDir, err)
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", paths.ConfigFile, err)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: skelgen config vet")

	return nil
}
