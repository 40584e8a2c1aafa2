package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/manifest"
	"github.com/opmodel/icongen/internal/output"
	"github.com/opmodel/icongen/internal/transform"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <package>",
		Short: "Show how a build would change the exports map",
		Long: `Compare the exports map in a package's package.json with the map a
build would write. Entries are reported as added, removed, or modified, with
a structural diff for modified entries. Entries kept in a different order
than a build writes them are reported as reordered.

Examples:
  # Check the React package
  icongen diff react`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(runDiff(cmd, args))
		},
	}

	cmd.Flags().String("root", "", "Directory containing the package directories (env: ICONGEN_ROOT_DIR)")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return missingPackage()
	}
	pkg := args[0]

	if _, err := transform.ParseFramework(pkg); err != nil {
		return err
	}

	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.RootDir, pkg, manifest.FileName)
	current, err := manifest.Load(path)
	if err != nil {
		return err
	}

	useColor := output.IsTTY()
	result, err := manifest.Diff(current, manifest.DefaultExports(), useColor)
	if err != nil {
		return err
	}

	styles := output.NoColorStyles()
	if useColor {
		styles = output.DefaultStyles()
	}

	modified := make([]output.ModifiedItem, len(result.Modified))
	for i, c := range result.Modified {
		modified[i] = output.ModifiedItem{Name: c.Pattern, Diff: c.Diff}
	}

	output.Debug("compared exports", "manifest", path)
	fmt.Fprintln(cmd.OutOrStdout(), output.RenderDiff(result.Added, result.Removed, modified, result.Reordered, styles))
	return nil
}
