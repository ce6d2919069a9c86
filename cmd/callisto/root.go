package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Callisto - HDBSCAN parameter validation service",
	Long: `Callisto validates HDBSCAN clustering parameter sets against a tiered
schema and analyzes cross-parameter dependencies.

It serves parameter editors over HTTP, providing:
  - Structural validation (types, ranges, enum membership) per editing tier
  - Cross-parameter dependency analysis with errors, warnings, and suggestions
  - Field schema and default discovery endpoints
  - Audit records of validation requests with configurable retention`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
