package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newMergeCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "merge <branch>",
		Short:              "Merge another branch into the current branch",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			outcome, err := r.Merge(args[0])
			if err != nil {
				fmt.Println(err.Error())
				return
			}
			switch {
			case outcome.FastForwarded:
				fmt.Println("Current branch fast-forwarded.")
			case outcome.AlreadyAncestor:
				fmt.Println("Given branch is an ancestor of the current branch.")
			default:
				for range outcome.ConflictedFiles {
					fmt.Println("Encountered a merge conflict.")
				}
			}
		},
	}
}
