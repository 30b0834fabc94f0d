// Command gitlet is the command-line front end for the version-control
// engine in pkg/repo. Grounded on the teacher's cmd/got/main.go
// newXCmd()-per-command cobra tree, but every leaf Run (not RunE) prints
// its own exact message and the process always exits 0: unlike got,
// gitlet's failure reporting is a single stdout line, never cobra's
// usage/error machinery.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func main() {
	os.Exit(run())
}

// run builds and executes the command tree, returning the process exit
// code. It is factored out of main so the same entry point can be driven
// by testscript.RunMain in tests.
func run() int {
	log := logging.New()
	if os.Getenv("GITLET_VERBOSE") != "" {
		log = logging.NewVerbose()
	}

	root := &cobra.Command{
		Use:                "gitlet",
		Short:              "A miniature local version-control system",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		// Cobra falls through to the root's own Run when the leading
		// argument doesn't match any registered subcommand name, rather
		// than raising its own "unknown command" error. That fallback is
		// deliberately exploited here: it is the only way to print
		// spec-exact text for both "no arguments" and "unknown command"
		// without cobra's own wording leaking through.
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				fmt.Println("Please enter a command.")
				return
			}
			fmt.Println("No command with that name exists.")
		},
	}

	root.AddCommand(
		newInitCmd(log),
		newAddCmd(log),
		newCommitCmd(log),
		newRmCmd(log),
		newLogCmd(log),
		newGlobalLogCmd(log),
		newFindCmd(log),
		newStatusCmd(log),
		newRestoreCmd(log),
		newBranchCmd(log),
		newSwitchCmd(log),
		newRmBranchCmd(log),
		newResetCmd(log),
		newMergeCmd(log),
	)

	// Every leaf prints its own outcome and never returns an error cobra
	// would otherwise render, so root.Execute itself never fails here;
	// gitlet always exits 0, per spec.md §6.
	_ = root.Execute()
	return 0
}
