// Package main is the entry point for the wishcard CLI.
package main

import (
	"os"

	"github.com/f3rmion/wishcard/cmd/wishcard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
