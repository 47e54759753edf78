// Package main provides the CLI entrypoint for dispatcher-generator.
//
// dispatcher-generator is a build-time codegen tool that:
//   - Scans Go packages (AST + go/types) for marked value types, their
//     adapter factory functions, and factory interface declarations
//   - Plans a deterministic dispatch order per factory declaration
//   - Generates one dispatcher type per declaration that routes runtime
//     type requests to the right adapter
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dispatcher-generator",
	Short: "Generate adapter dispatchers from marked Go declarations",
	Long: `dispatcher-generator scans Go packages for types marked with
//adapter:value and factory interfaces marked with //adapter:factory,
then generates a dispatcher per factory that maps a runtime type request
to the matching adapter factory function.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
