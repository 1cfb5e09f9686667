package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/fitreport/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.fitreport/config.yaml (or $FITREPORT_HOME)
with environment overrides applied.

This includes:
- YAML syntax and unknown keys
- Config version compatibility
- Output format and report language
- Logging level and format
- Engine concurrency bounds`,
		Example: `  # Validate current configuration
  fitreport config validate

  # Validate and show detailed information
  fitreport config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(config.PathIn(dir))
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Report language: %s\n", cfg.Output.Language)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Engine concurrency: %d\n", cfg.Engine.Concurrency)
	cmd.Printf("  Continue on error: %t\n", cfg.Engine.ContinueOnError)
}
