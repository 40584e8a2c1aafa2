// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/icongen/internal/config"
	"github.com/opmodel/icongen/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE. configErr is kept so commands that do
	// not need configuration still run when the file is broken.
	loadedConfig *config.Config
	configErr    error
)

// configKeys maps command flags to configuration keys. A flag set on the
// command line overrides the env var and the config file.
var configKeys = map[string]string{
	"icons":       "iconsDir",
	"root":        "rootDir",
	"suffix":      "suffix",
	"concurrency": "concurrency",
}

// NewRootCmd creates the root command for the icongen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "icongen",
		Short: "Generate framework icon packages from SVG sources",
		Long: `icongen turns a directory of SVG icons into React and Vue component
packages, each shipped as CommonJS and ES modules with TypeScript
declarations and a package.json exports map.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewExportsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loader := config.NewLoader()
	for flag, key := range configKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := loader.BindFlag(key, f); err != nil {
				return err
			}
		}
	}

	loadedConfig, configErr = loader.LoadAndValidate(configFlag)

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig != nil && loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if configErr != nil {
		output.Debug("config load error", "error", configErr)
		return nil
	}

	output.Debug("initializing CLI",
		"config", loader.ConfigFileUsed(),
		"iconsDir", loadedConfig.IconsDir,
		"rootDir", loadedConfig.RootDir,
		"suffix", loadedConfig.Suffix,
		"concurrency", loadedConfig.Concurrency,
	)
	return nil
}

// requireConfig returns the loaded configuration or the error that
// prevented loading it.
func requireConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	if loadedConfig == nil {
		return config.DefaultConfig(), nil
	}
	return loadedConfig, nil
}
