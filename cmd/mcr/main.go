// SPDX-License-Identifier: MIT

// Package main provides the mcr command: a minimum cycle ratio solver over
// generated directed graphs.
//
// Usage:
//
//	mcr [--config file] [--json] [-v] <command> [flags]
//
// Commands:
//
//	solve    - build the scenario graph and report its minimum cycle ratio
//	oracles  - list the available oracles
//	version  - print the version
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cycleratio/cmd/mcr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
