package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/fitreport/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get KEY",
		Short:     "Print one configuration value",
		Long:      "Print the effective value of a configuration key.\n\nKeys: " + strings.Join(config.Keys(), ", "),
		Example:   "  fitreport config get output.default_format",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().GetValue(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
