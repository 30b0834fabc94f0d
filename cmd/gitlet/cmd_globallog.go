package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newGlobalLogCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "global-log",
		Short:              "Show every commit ever made",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 0) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			entries, err := r.GlobalLog()
			if err != nil {
				return
			}
			for _, e := range entries {
				printLogEntry(e.Commit)
			}
		},
	}
}
