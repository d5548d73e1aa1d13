package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veldran/countrygen/litgen"
)

// WatchCmd regenerates the table whenever the dataset changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the dataset changes",
	Long: `Watch the dataset and regenerate the constant table on every change.

Rapid successive writes are debounced into a single regeneration. A dataset
that fails to parse logs the error and leaves the previous table untouched.

Examples:
  countrygen watch
  countrygen watch --lang typescript`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	gen, rc, err := resolve(cmd)
	if err != nil {
		return err
	}

	// One pass up front so the output reflects the current dataset before
	// the first change arrives.
	if err := litgen.Run(gen, rc); err != nil {
		return err
	}

	watcher, err := litgen.NewWatcher(gen, rc)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", rc.InputPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
