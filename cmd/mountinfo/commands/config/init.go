package config

import (
	"fmt"

	"github.com/marmos91/mountinfo/pkg/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file holding the default values.

By default, the file is created at $XDG_CONFIG_HOME/mountinfo/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  mountinfo config init

  # Initialize with custom path
  mountinfo config init --config /etc/mountinfo.yaml

  # Force overwrite existing config
  mountinfo config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			var err error
			if configPath != "" {
				err = config.InitConfigToPath(configPath, force)
			} else {
				configPath, err = config.InitConfig(force)
			}
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing config file")
	return cmd
}
