package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newRmBranchCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "rm-branch <name>",
		Short:              "Delete a branch pointer",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.RemoveBranch(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
