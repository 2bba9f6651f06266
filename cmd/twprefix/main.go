// Package main provides the twprefix CLI for adding, renaming, and removing
// Tailwind class prefixes in a source tree.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
