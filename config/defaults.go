package config

import "github.com/spf13/viper"

// Default file locations. The tool is meant to run from the repository root
// with no arguments.
const (
	DefaultInput    = "countries.json"
	DefaultGoOutput = "countries/table.go"
	DefaultTSOutput = "web/countries.ts"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("output", "") // per-language default, resolved by the CLI
	v.SetDefault("language", "go")
	v.SetDefault("package", "countries")
	v.SetDefault("const_name", "") // generator default (All / ALL_COUNTRIES)
}

// OutputForLanguage resolves the effective output path for lang when no
// explicit output is configured.
func (c *Config) OutputForLanguage(lang string) string {
	if c.Output != "" {
		return c.Output
	}
	switch lang {
	case "typescript":
		return DefaultTSOutput
	default:
		return DefaultGoOutput
	}
}
