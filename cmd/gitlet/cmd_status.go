package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

var activeBranchColor = color.New(color.FgGreen, color.Bold).SprintFunc()

func newStatusCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "status",
		Short:              "Show branches, staged changes, and untracked files",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 0) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			st, err := r.Status()
			if err != nil {
				fmt.Println(err.Error())
				return
			}

			fmt.Println("=== Branches ===")
			for _, b := range st.Branches {
				if b == st.ActiveBranch {
					fmt.Println(activeBranchColor("*" + b))
				} else {
					fmt.Println(b)
				}
			}
			fmt.Println()

			fmt.Println("=== Staged Files ===")
			for _, f := range st.StagedFiles {
				fmt.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Removed Files ===")
			for _, f := range st.RemovedFiles {
				fmt.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Modifications Not Staged For Commit ===")
			for _, f := range st.ModificationsNotStaged {
				fmt.Println(f)
			}
			fmt.Println()

			fmt.Println("=== Untracked Files ===")
			for _, f := range st.UntrackedFiles {
				fmt.Println(f)
			}
			fmt.Println()
		},
	}
}
