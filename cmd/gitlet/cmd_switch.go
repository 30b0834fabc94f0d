package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newSwitchCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "switch <name>",
		Short:              "Switch to another branch",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.Switch(args[0]); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
