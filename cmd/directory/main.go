// Package main provides the entry point for the workforce directory CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Workforce directory browser",
	Long:  "Browse workforce-development listings (jobs, events, training programs, provider submissions) with faceted filters, and explore state-by-state labor-market profiles.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
