package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newLogCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "log",
		Short:              "Show the commit history of the current branch",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 0) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			entries, err := r.Log()
			if err != nil {
				return
			}
			for _, e := range entries {
				printLogEntry(e.Commit)
			}
		},
	}
}
