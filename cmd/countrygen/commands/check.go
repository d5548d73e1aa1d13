package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldran/countrygen/errors"
	"github.com/veldran/countrygen/litgen"
)

// CheckCmd checks whether the generated table is up to date.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generated table is up to date",
	Long: `Check that the generated table matches the current dataset.

The table is regenerated in memory and byte-compared with the existing output
file; nothing is written.

Exit codes:
  0 - Table is up to date
  1 - Table is out of date or the check failed

Examples:
  countrygen check            # verify countries/table.go
  ./scripts/check.sh          # same, via the scripts wrapper`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	gen, rc, err := resolve(cmd)
	if err != nil {
		return err
	}

	result, err := litgen.Check(gen, rc)
	if err != nil {
		return err
	}

	if result.UpToDate {
		fmt.Println("✓ Generated table is up to date")
		return nil
	}

	fmt.Printf("✗ %s is out of date (%s)\n", result.OutputPath, result.Reason)
	return errors.New("generated table is out of date - run 'countrygen generate' to update")
}
