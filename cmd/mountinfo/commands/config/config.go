// Package config implements configuration management subcommands.
package config

import (
	"github.com/spf13/cobra"
)

// NewCmd returns the config subcommand.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage the mountinfo configuration file.

Subcommands:
  init      Write a configuration file with default values
  show      Display the effective configuration`,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newShowCmd())
	return cmd
}
