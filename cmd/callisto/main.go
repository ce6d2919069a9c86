// Callisto is an HDBSCAN parameter validation service.
//
// It validates clustering parameter sets against a tiered schema (basic,
// advanced, super-advanced), analyzes cross-parameter dependencies, and
// serves the results over HTTP for parameter editors.
//
// Usage:
//
//	# Start the server with default configuration
//	callisto run
//
//	# Start with a custom configuration file
//	callisto run --config /path/to/config.yaml
//
//	# Validate a parameter file without a server
//	callisto validate --file params.yaml --mode advanced
//
//	# Print the field schema for a tier
//	callisto schema --mode super-advanced
//
//	# Show version information
//	callisto version
package main

func main() {
	Execute()
}
