// Package main is the entry point for the shk CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/shrike/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
