package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"dispatcher-generator/internal/discover"
	"dispatcher-generator/internal/plan"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [patterns...]",
	Short: "Dump the discovered declarations and dispatch plans",
	Long: `Load the given package patterns and print the discovered value
types, factory declarations, and the dispatch plan each declaration would
generate from. Useful for debugging why a type is or is not dispatched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	d, err := discover.NewLoader().LoadPackages(args...)
	if err != nil {
		return err
	}

	fmt.Printf("discovered %d value type(s), %d factory declaration(s)\n\n",
		len(d.ValueTypes), len(d.Dispatchers))

	for _, disp := range d.Dispatchers {
		fmt.Printf("=== %s ===\n", disp.Key())
		spew.Dump(plan.Build(disp, d.ValueTypes, nil))
		fmt.Println()
	}

	return nil
}
