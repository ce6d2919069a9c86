// Package cli provides shared helpers for the command-line interface:
// typed command errors, signal-aware contexts, and output formatting.
package cli
