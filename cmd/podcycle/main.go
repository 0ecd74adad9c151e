// Package main is the entry point for the podcycle CLI.
//
// podcycle performs a controlled, ordered reset of the pods backing a
// stateful, ordinally indexed workload, followed by a reset of a
// dependent pod group and a handoff to an interactive monitor.
//
// For detailed usage information, run:
//
//	podcycle --help
package main

import (
	"fmt"
	"os"

	"github.com/podcycle/podcycle/cmd/podcycle/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
