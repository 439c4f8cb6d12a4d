// Package main is the entry point for the tuplepanel CLI/TUI.
package main

import (
	"os"

	"github.com/tuplepanel-io/tuplepanel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
