// Package main is the entry point for the unityreg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/unityreg/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
