package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/manifest"
	"github.com/opmodel/icongen/internal/output"
)

// NewExportsCmd creates the exports command.
func NewExportsCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "exports",
		Short: "Print the package exports map",
		Long: `Print the exports map written into every generated package.json.

Examples:
  # Print as YAML
  icongen exports

  # Print as JSON
  icongen exports -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(runExports(cmd, outputFlag))
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "yaml",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runExports(cmd *cobra.Command, outputFlag string) error {
	format, ok := output.ParseFormat(outputFlag)
	if !ok {
		return oerrors.NewConfigError(
			fmt.Sprintf("invalid output format %q", outputFlag),
			"valid formats: "+strings.Join(output.ValidFormats(), ", "),
		)
	}

	exports := manifest.DefaultExports()

	var data []byte
	var err error
	switch format {
	case output.FormatJSON:
		data, err = json.MarshalIndent(exports, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(exports)
	}
	if err != nil {
		return fmt.Errorf("encoding exports: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
