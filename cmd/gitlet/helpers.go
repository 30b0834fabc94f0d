package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/gitlet/internal/logging"
	"github.com/odvcencio/gitlet/pkg/repo"
)

const incorrectOperands = "Incorrect operands."

// openRepo opens the repository rooted at the current working directory,
// printing "Not in an initialized Gitlet directory." and returning false
// if none exists. Every command but init calls this first.
func openRepo(log *logging.Logger) (*repo.Repo, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(err.Error())
		return nil, false
	}
	r, err := repo.Open(cwd, log)
	if err != nil {
		fmt.Println(err.Error())
		return nil, false
	}
	return r, true
}

// checkArity prints "Incorrect operands." and reports false if args does
// not have exactly want elements.
func checkArity(args []string, want int) bool {
	if len(args) != want {
		fmt.Println(incorrectOperands)
		return false
	}
	return true
}
