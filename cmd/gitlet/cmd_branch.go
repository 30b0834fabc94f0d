package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newBranchCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "branch <name>",
		Short:              "Create a new branch pointing at HEAD",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.Branch(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
