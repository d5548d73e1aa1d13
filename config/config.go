// Package config loads countrygen configuration using Viper.
//
// Precedence, lowest to highest: built-in defaults, an optional
// countrygen.toml in the working directory, COUNTRYGEN_* environment
// variables, command-line flags (bound by the CLI layer).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/veldran/countrygen/errors"
)

// Config holds the resolved generation settings.
type Config struct {
	// Input is the dataset path.
	Input string `mapstructure:"input"`

	// Output is the output file path. Empty selects the per-language
	// default (countries/table.go for Go, web/countries.ts for TypeScript).
	Output string `mapstructure:"output"`

	// Language is the target language: "go" or "typescript".
	Language string `mapstructure:"language"`

	// Package is the Go package the generated file belongs to.
	Package string `mapstructure:"package"`

	// ConstName overrides the name of the generated constant. Empty selects
	// the language default.
	ConstName string `mapstructure:"const_name"`
}

// Load reads configuration from defaults, countrygen.toml (if present), and
// the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("COUNTRYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("countrygen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real problem.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read countrygen.toml")
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration from a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no generator can serve.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Language)) {
	case "go", "golang", "typescript", "ts":
		return nil
	default:
		return errors.Newf("unsupported language: %s (supported: go, typescript)", c.Language)
	}
}
