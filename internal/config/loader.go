package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	oerrors "github.com/opmodel/icongen/internal/errors"
)

// Environment variable prefix for icongen configuration.
const envPrefix = "ICONGEN"

// Loader handles loading and merging configuration from multiple sources.
// Precedence, highest first: bound flags, environment, config file, defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("iconsDir", defaults.IconsDir)
	v.SetDefault("rootDir", defaults.RootDir)
	v.SetDefault("suffix", defaults.Suffix)
	v.SetDefault("concurrency", defaults.Concurrency)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("iconsDir", "ICONGEN_ICONS_DIR")
	_ = v.BindEnv("rootDir", "ICONGEN_ROOT_DIR")
	_ = v.BindEnv("suffix", "ICONGEN_SUFFIX")
	_ = v.BindEnv("concurrency", "ICONGEN_CONCURRENCY")
	_ = v.BindEnv("log.timestamps", "ICONGEN_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// BindFlag makes a command-line flag override the given key when the flag
// was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: no such flag", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads configuration from configFile. An empty configFile looks for
// icongen.yaml in the working directory and tolerates its absence; an
// explicit path that does not exist is a configuration error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, oerrors.WrapConfig(err, "reading config file", configFile)
		}
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		l.v.AddConfigPath(".")
	}
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, oerrors.WrapConfig(err, "reading config file", l.v.ConfigFileUsed())
		}
		// No config file: defaults + env vars + flags.
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.WrapConfig(err, "decoding config", l.v.ConfigFileUsed())
	}

	return &cfg, nil
}

// ConfigFileUsed returns the config file read by Load, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// LoadAndValidate loads configuration and checks it against the schema.
func (l *Loader) LoadAndValidate(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, oerrors.WrapConfig(err, "invalid configuration", l.v.ConfigFileUsed())
	}
	return cfg, nil
}

// FileExists checks if a config file exists at path.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
