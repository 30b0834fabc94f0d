package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newRmCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "rm <path>",
		Short:              "Unstage a file, or stage it for removal",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.Remove(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
