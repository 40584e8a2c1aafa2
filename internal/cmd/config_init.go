package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/config"
	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write an icongen.yaml with default settings.

The file is written to the --config path, or to ./icongen.yaml.

Examples:
  # Initialize configuration
  icongen config init

  # Overwrite existing configuration
  icongen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(runConfigInit(force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	path := configPath()

	exists, err := config.FileExists(path)
	if err != nil {
		return oerrors.NewIOError("checking configuration", path, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrConfig,
		}
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.NewIOError("writing configuration", path, err)
	}

	output.Println(output.FormatCheckmark("Configuration written to " + path))
	output.Println("Validate with: icongen config vet")
	return nil
}
