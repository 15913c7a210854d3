// Package config loads the brp-extras CLI configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the brp-extras configuration, read from brp.yml in the
// working directory and from BRP_*-prefixed environment variables.
type Config struct {
	RegistryFile string       `mapstructure:"registry_file"` // Path to the registry snapshot JSON
	Debug        bool         `mapstructure:"debug"`         // Attach discovery traces to output
	Output       OutputConfig `mapstructure:"output"`
}

// OutputConfig represents output formatting configuration.
type OutputConfig struct {
	Format  string `mapstructure:"format"`   // "table" or "json"
	NoColor bool   `mapstructure:"no_color"` // Disable colored output
}

// Load loads the configuration from brp.yml or brp.yaml, falling back to
// defaults when no config file exists.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("registry_file", "registry.json")
	v.SetDefault("debug", false)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.no_color", false)

	v.SetConfigName("brp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BRP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validate(config *Config) error {
	switch config.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("invalid output format '%s': must be 'table' or 'json'", config.Output.Format)
	}
	if config.RegistryFile == "" {
		return fmt.Errorf("registry_file must not be empty")
	}
	return nil
}
