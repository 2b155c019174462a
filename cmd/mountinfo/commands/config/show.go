package config

import (
	"fmt"

	"github.com/marmos91/mountinfo/internal/cli/output"
	"github.com/marmos91/mountinfo/pkg/config"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var showOutput string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the configuration mountinfo would run with: defaults, overlaid
with the configuration file, overlaid with the environment.

By default outputs YAML format. Use --output to change format.

Examples:
  # Show the effective configuration as YAML
  mountinfo config show

  # Show as JSON
  mountinfo config show --output json

  # Show a specific config file
  mountinfo config show --config /etc/mountinfo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(showOutput)
			if err != nil {
				return err
			}

			switch format {
			case output.FormatJSON:
				return output.PrintJSON(cmd.OutOrStdout(), cfg)
			case output.FormatYAML:
				return output.PrintYAML(cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("unsupported output format for config: %s (valid: yaml, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
	return cmd
}
