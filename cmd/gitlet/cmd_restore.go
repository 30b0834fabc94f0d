package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

// newRestoreCmd implements both `restore -- <path>` (HEAD-relative) and
// `restore <commit> -- <path>` (commit-relative). DisableFlagParsing
// keeps the literal "--" token in args so the two forms can be told apart
// purely by argument count and position, per spec.md §6.
func newRestoreCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "restore -- <path> | restore <commit> -- <path>",
		Short:              "Restore a file from HEAD or from a specific commit",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			headForm := len(args) == 2 && args[0] == "--"
			commitForm := len(args) == 3 && args[1] == "--"
			if !headForm && !commitForm {
				fmt.Println(incorrectOperands)
				return
			}

			r, ok := openRepo(log)
			if !ok {
				return
			}

			if headForm {
				if err := r.Restore(args[1]); err != nil {
					fmt.Println(err.Error())
				}
				return
			}
			if err := r.RestoreFromCommit(args[0], args[2]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
