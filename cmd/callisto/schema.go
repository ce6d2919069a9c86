package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"densityhq/callisto/pkg/cli"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/schema"
)

var schemaFlags struct {
	mode   string
	format string
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the parameter schema for a tier",
	Long: `Print the field descriptors (kind, bounds, enum members, defaults) for
the requested validation tier.

Examples:
  # Basic tier fields
  callisto schema

  # Every field
  callisto schema --mode super-advanced --format json`,
	RunE: printSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaFlags.mode, "mode", "m", "basic", "validation tier: basic, advanced, super-advanced")
	schemaCmd.Flags().StringVar(&schemaFlags.format, "format", "text", "output format: text, json")
}

func printSchema(cmd *cobra.Command, args []string) error {
	mode, err := params.ParseMode(schemaFlags.mode)
	if err != nil {
		return cli.NewConfigError("mode", err.Error())
	}

	s := schema.For(mode)

	if schemaFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, s)
	}

	fmt.Printf("Schema for mode %q (%d fields):\n\n", mode, len(s.Fields))
	for _, f := range s.Fields {
		fmt.Printf("  %s (%s)", f.Name, f.Kind)
		if f.Required {
			fmt.Print(" [required]")
		}
		if f.Min != nil && f.Max != nil {
			fmt.Printf(" range %g-%g", *f.Min, *f.Max)
		} else if f.Min != nil {
			fmt.Printf(" min %g", *f.Min)
		} else if f.Max != nil {
			fmt.Printf(" max %g", *f.Max)
		}
		if len(f.Allowed) > 0 {
			fmt.Printf(" values %v", f.Allowed)
		}
		if f.Default != nil {
			fmt.Printf(" default %v", f.Default)
		}
		fmt.Println()
	}

	return nil
}
