package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"densityhq/callisto/pkg/cli"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/validation"
)

var validateFlags struct {
	file   string
	mode   string
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parameter file",
	Long: `Validate an HDBSCAN parameter file against the tiered schema and run
cross-parameter dependency analysis.

The file is YAML with the parameter names used by the API:

  minClusterSize: 10
  minSamples: 5
  metric: euclidean

Examples:
  # Validate with the basic tier
  callisto validate --file params.yaml

  # Validate all fields
  callisto validate --file params.yaml --mode super-advanced

  # JSON output for CI/CD
  callisto validate --file params.yaml --format json`,
	RunE: validateFile,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "parameter file to validate (required)")
	validateCmd.Flags().StringVarP(&validateFlags.mode, "mode", "m", "basic", "validation tier: basic, advanced, super-advanced")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	_ = validateCmd.MarkFlagRequired("file")
}

// fileReport is the combined outcome written by the validate command.
type fileReport struct {
	File         string                      `json:"file"`
	Mode         string                      `json:"mode"`
	Result       validation.Result           `json:"result"`
	Dependencies validation.DependencyResult `json:"dependencies"`
}

func validateFile(cmd *cobra.Command, args []string) error {
	mode, err := params.ParseMode(validateFlags.mode)
	if err != nil {
		return cli.NewConfigError("mode", err.Error())
	}

	data, err := os.ReadFile(validateFlags.file)
	if err != nil {
		return cli.NewCommandError("validate", fmt.Errorf("failed to read file: %w", err))
	}

	var ps params.ParameterSet
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return cli.NewCommandError("validate", fmt.Errorf("failed to parse file: %w", err))
	}

	report := fileReport{
		File:         validateFlags.file,
		Mode:         string(mode),
		Result:       validation.Validate(&ps, mode),
		Dependencies: validation.ValidateDependencies(&ps),
	}

	if validateFlags.format == "json" {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if !report.Result.Valid {
		return cli.NewCommandError("validate", fmt.Errorf("validation failed"))
	}
	return nil
}

func printReport(report fileReport) {
	fmt.Printf("Validating %s (mode: %s)...\n\n", report.File, report.Mode)

	if report.Result.Valid {
		fmt.Println("Structure: valid")
	} else {
		fmt.Println("Structure: invalid")
		for field, messages := range report.Result.Errors {
			for _, msg := range messages {
				fmt.Printf("  error: %s %s\n", field, msg)
			}
		}
	}

	for _, w := range report.Result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, s := range report.Result.Suggestions {
		fmt.Printf("  suggestion: %s\n", s)
	}

	if report.Dependencies.HasIssues {
		fmt.Println("\nDependencies: issues found")
	} else {
		fmt.Println("\nDependencies: clean")
	}
	for _, e := range report.Dependencies.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range report.Dependencies.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, s := range report.Dependencies.Suggestions {
		fmt.Printf("  suggestion: %s\n", s)
	}
}
