package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newResetCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "reset <commit>",
		Short:              "Move the current branch to an arbitrary commit",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.Reset(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
