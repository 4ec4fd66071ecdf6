// Package main is the entry point for telecom-billing CLI.
package main

import (
	"os"

	"telecom-billing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
