package commands

import (
	"github.com/spf13/cobra"

	"github.com/veldran/countrygen/litgen"
)

// GenerateCmd regenerates the constant table.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the constant country table",
	Long: `Regenerate the constant country table from the dataset.

The whole output is rendered in memory and the output file is replaced in a
single atomic write, so a malformed dataset never leaves a truncated table
behind. Any previous content is overwritten without backup.

Examples:
  countrygen generate                    # countries.json -> countries/table.go
  countrygen generate --lang typescript  # countries.json -> web/countries.ts
  countrygen generate -i data/eu.json -o internal/eu/table.go --package eu`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, rc, err := resolve(cmd)
	if err != nil {
		return err
	}
	return litgen.Run(gen, rc)
}
