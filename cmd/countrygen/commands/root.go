// Package commands wires the countrygen CLI.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldran/countrygen/config"
	"github.com/veldran/countrygen/errors"
	"github.com/veldran/countrygen/litgen"
	"github.com/veldran/countrygen/litgen/golang"
	"github.com/veldran/countrygen/litgen/typescript"
	"github.com/veldran/countrygen/logger"
)

var (
	flagInput   string
	flagOutput  string
	flagLang    string
	flagPackage string
	flagConst   string
	jsonLogs    bool
)

// RootCmd is the countrygen root command. Running it bare is equivalent to
// countrygen generate with the default paths.
var RootCmd = &cobra.Command{
	Use:   "countrygen",
	Short: "Generate compile-time country tables from countries.json",
	Long: `countrygen reads the canonical countries.json dataset and emits a source
file declaring the same data as a compile-time constant collection.

With no arguments it reads countries.json and rewrites countries/table.go.

Available commands:
  generate - Regenerate the constant table (also the default action)
  check    - Verify the checked-in table matches the dataset (CI)
  watch    - Regenerate whenever the dataset changes
  version  - Show build information

Examples:
  countrygen                       # countries.json -> countries/table.go
  countrygen check                 # fail if countries/table.go is stale
  countrygen --lang typescript     # countries.json -> web/countries.ts
  countrygen -i data/eu.json -o internal/eu/table.go --package eu`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runGenerate,
}

func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON lines")

	RootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Dataset path (default: countries.json)")
	RootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: countries/table.go)")
	RootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Target language: go, typescript (default: go)")
	RootCmd.PersistentFlags().StringVar(&flagPackage, "package", "", "Go package for the generated file (default: countries)")
	RootCmd.PersistentFlags().StringVar(&flagConst, "const", "", "Name of the generated constant (default: All / ALL_COUNTRIES)")

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(WatchCmd)
	RootCmd.AddCommand(VersionCmd)
}

// Execute runs the CLI.
func Execute() error {
	return RootCmd.Execute()
}

// resolve merges config file, environment, and flags into a generator and a
// run configuration. Flags win when set.
func resolve(cmd *cobra.Command) (litgen.Generator, litgen.RunConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, litgen.RunConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = flagInput
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("lang") {
		cfg.Language = flagLang
	}
	if flags.Changed("package") {
		cfg.Package = flagPackage
	}
	if flags.Changed("const") {
		cfg.ConstName = flagConst
	}

	gen, err := generatorFor(cfg.Language)
	if err != nil {
		return nil, litgen.RunConfig{}, err
	}

	rc := litgen.RunConfig{
		InputPath:  cfg.Input,
		OutputPath: cfg.OutputForLanguage(gen.Language()),
		Opts: litgen.Options{
			PackageName: cfg.Package,
			ConstName:   cfg.ConstName,
		},
	}

	logger.Debugw("resolved configuration",
		"input", rc.InputPath,
		"output", rc.OutputPath,
		"language", gen.Language())
	return gen, rc, nil
}

// generatorFor selects the language-specific emitter.
func generatorFor(lang string) (litgen.Generator, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "go", "golang":
		return golang.NewGenerator(), nil
	case "typescript", "ts":
		return typescript.NewGenerator(), nil
	default:
		return nil, errors.Newf("unknown language: %s (supported: go, typescript)", lang)
	}
}
