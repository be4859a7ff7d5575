// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/config"
	"github.com/skelgen/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	skelConfig *config.Config
)

// NewRootCmd creates the root command for the skelgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "skelgen",
		Short:         "Project skeleton generator",
		Long: `skelgen realizes built-in declarative directory trees as empty
directories and zero-byte files, ready for manual population.

Built-in layouts:
  flutter-app  Mobile app skeleton under lib/
  admin-panel  Web admin panel skeleton under admin-panel/`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: SKELGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewGenCmd())
	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewLayoutsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands that don't need config still work
		loaded = (&config.Config{}).WithDefaults()
	}
	skelConfig = loaded

	// Timestamps precedence: flag (if explicitly set) > config > default
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if skelConfig.Log.Timestamps != nil {
		logCfg.Timestamps = skelConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", configFlag,
		"outputDir", skelConfig.OutputDir,
		"layout", skelConfig.Layout,
	)

	return nil
}

// GetConfig returns the loaded skelgen configuration.
func GetConfig() *config.Config {
	if skelConfig == nil {
		return (&config.Config{}).WithDefaults()
	}
	return skelConfig
}
