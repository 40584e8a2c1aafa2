package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for icongen.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// configPath returns the --config flag value or the default file name.
func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.FileName
}
