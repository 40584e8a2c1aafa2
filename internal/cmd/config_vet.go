package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/config"
	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate an icongen configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Values satisfy the configuration schema

The config path is --config, or ./icongen.yaml.

Examples:
  # Validate default configuration
  icongen config vet

  # Validate custom config path
  icongen config vet --config ./build/icongen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(runConfigVet())
		},
	}
}

func runConfigVet() error {
	path := configPath()
	output.Debug("validating config", "path", path)

	exists, err := config.FileExists(path)
	if err != nil {
		return oerrors.NewIOError("checking configuration", path, err)
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'icongen config init' to create default configuration",
			Cause:    oerrors.ErrConfig,
		}
	}

	if _, err := config.NewLoader().LoadAndValidate(path); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + path))
	return nil
}
