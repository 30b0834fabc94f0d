package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newAddCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "add <path>",
		Short:              "Stage a file for the next commit",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			if err := r.Add(args[0]); err != nil {
				fmt.Println(addErrorMessage(err))
			}
		},
	}
}

func addErrorMessage(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "File does not exist."
	}
	return err.Error()
}
