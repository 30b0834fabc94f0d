package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newCommitCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "commit <message>",
		Short:              "Record staged changes as a new commit",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if _, err := r.Commit(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
