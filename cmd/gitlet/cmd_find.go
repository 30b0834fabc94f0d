package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/gitlet/internal/logging"
)

func newFindCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "find <message>",
		Short:              "Print the ids of all commits with a given message",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !checkArity(args, 1) {
				return
			}
			r, ok := openRepo(log)
			if !ok {
				return
			}
			ids, err := r.Find(args[0])
			if err != nil {
				return
			}
			if len(ids) == 0 {
				fmt.Println("Found no commit with that message.")
				return
			}
			for _, id := range ids {
				fmt.Println(string(id))
			}
		},
	}
}
