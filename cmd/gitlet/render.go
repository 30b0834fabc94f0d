package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// commitHeader colors a "commit <id>" header line the way `git log`
// does, grounded on RobAntunes-TigVCS/cmd/tig/main.go's
// color.New(...).SprintFunc() idiom.
var commitHeader = color.New(color.FgYellow, color.Bold).SprintFunc()

// printLogEntry renders one commit in the fixed five/six-line format the
// reference implementation's logPrinter produces.
func printLogEntry(c *objects.Commit) {
	fmt.Println("===")
	fmt.Println(commitHeader("commit " + string(c.ID)))
	if c.IsMerge() {
		fmt.Printf("Merge: %s %s\n", shortID(c.Parent), shortID(c.SecondParent))
	}
	fmt.Println("Date: " + c.Timestamp.Format("Mon Jan 2 15:04:05 2006 -0700"))
	fmt.Println(c.Message)
	fmt.Println()
}

func shortID(id objects.Hash) string {
	if len(id) < 7 {
		return string(id)
	}
	return string(id[:7])
}
