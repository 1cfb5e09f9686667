package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/fitreport/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the fitreport CLI.
// It wires up logging and tracing for every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "fitreport",
		Short:   "Fitness tracker workout reports",
		Long:    "fitreport: Turn fitness tracker sensor packages into workout reports",
		Version: ver,
		Example: rootCmdExample,
		// Usage is noise for data errors; flag errors still print it via cobra.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewReportCmd(), NewSampleCmd(), NewKindsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Print the built-in sample reports
  fitreport sample

  # Summarize one package given on the command line
  fitreport report RUN 15000 1 75

  # Summarize a package file as a table
  fitreport report --file week.yaml --output table

  # Read packages from stdin, keep going past bad lines
  cat day.txt | fitreport report --file - --continue-on-error

  # Russian report lines and a Prometheus textfile
  fitreport report --sample --lang ru --metrics-file /var/lib/node_exporter/fitreport.prom

  # List workout kinds and their arguments
  fitreport kinds

  # Initialize configuration
  fitreport config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigGetCmd(), NewConfigValidateCmd())
	return cmd
}
