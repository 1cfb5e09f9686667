package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/fitreport/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the
// default configuration to $FITREPORT_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create configuration
  fitreport config init

  # Create configuration, overwriting existing
  fitreport config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	// Defaults only; env overrides must not leak into the file.
	cfg := config.Default()
	cfg.SetConfigPath(config.PathIn(dir))

	if !force {
		if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
		}
	}

	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
