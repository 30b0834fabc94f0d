package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
	"github.com/odvcencio/gitlet/pkg/repo"
)

func newInitCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "init",
		Short:              "Initialize a new gitlet repository in the current directory",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 0) {
				return
			}
			cwd, err := os.Getwd()
			if err != nil {
				fmt.Println(err.Error())
				return
			}
			if _, err := repo.Init(cwd, log); err != nil {
				fmt.Println(err.Error())
			}
		},
	}
}
