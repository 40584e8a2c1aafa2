package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/output"
	"github.com/opmodel/icongen/internal/pipeline"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build <package>",
		Short: "Build a framework icon package",
		Long: `Build a framework icon package from the icons directory.

Every icon becomes a component module in CommonJS (package root) and ES
module (esm/) form, with a TypeScript declaration next to each. The package
also gets index modules, esm/package.json, and an exports map merged into its
package.json. Files named package.json, README.md, LICENSE, and CHANGELOG.md
are kept; everything else in the package directory is replaced.

The package is built in a staging directory and swapped into place only when
every file was generated, so a failed build leaves the package as it was.

Arguments:
  package    Framework package to build: react or vue

Examples:
  # Build the React package
  icongen build react

  # Build from another icon set
  icongen build vue --icons ./optimized/24/outline

  # List what would be generated
  icongen build react --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(runBuild(cmd, args, dryRun))
		},
	}

	cmd.Flags().String("icons", "", "Directory of .svg icon sources (env: ICONGEN_ICONS_DIR)")
	cmd.Flags().String("root", "", "Directory containing the package directories (env: ICONGEN_ROOT_DIR)")
	cmd.Flags().String("suffix", "", "Suffix appended to component names (env: ICONGEN_SUFFIX)")
	cmd.Flags().Int("concurrency", 0, "Parallel render tasks, 0 for one per CPU (env: ICONGEN_CONCURRENCY)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render in memory and list the files without writing them")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, dryRun bool) error {
	if len(args) == 0 || args[0] == "" {
		return missingPackage()
	}
	pkg := args[0]

	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Options{
		Package:     pkg,
		IconsDir:    cfg.IconsDir,
		RootDir:     cfg.RootDir,
		Suffix:      cfg.Suffix,
		Concurrency: cfg.Concurrency,
		DryRun:      dryRun,
	})

	output.Info(fmt.Sprintf("building %s package", pkg), "icons", cfg.IconsDir, "dir", p.Dir())

	var result *pipeline.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var runErr error
		result, runErr = p.Run(cmd.Context())
		return runErr
	}, output.WithTitle(fmt.Sprintf("Building %s package...", pkg)))
	if err != nil {
		return err
	}

	output.Debug("build finished", "duration", result.Duration.Round(time.Millisecond))

	if dryRun {
		entries := make([]output.FileEntry, len(result.Files))
		for i, f := range result.Files {
			entries[i] = output.FileEntry{Path: f.Path, Size: f.Size}
		}
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderFileTable(entries))
		return nil
	}

	output.Println(output.FormatBuildSummary(pkg, result.Icons, len(result.Files)))
	return nil
}
