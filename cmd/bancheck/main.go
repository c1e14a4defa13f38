// Package main provides the bancheck command.
package main

import (
	"os"

	"github.com/leapstack-labs/bancheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
