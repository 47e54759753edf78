package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dispatcher-generator/internal/config"
	"dispatcher-generator/internal/discover"
	"dispatcher-generator/internal/gen"
)

var (
	generateConfigPath string
	generatePackages   []string
	generateOutput     string
	generatePrefix     string
	generateDryRun     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [patterns...]",
	Short: "Generate dispatchers for the given packages",
	Long: `Scan the given package patterns (or the manifest's, or ./...) and
write one generated dispatcher file next to each factory declaration.

Examples:
  dispatcher-generator generate                      # packages from dispatcher.yaml or ./...
  dispatcher-generator generate ./example/...        # explicit patterns
  dispatcher-generator generate --dry-run ./...      # report without writing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", config.DefaultFilename, "Path to the YAML manifest")
	generateCmd.Flags().StringSliceVarP(&generatePackages, "packages", "p", nil, "Package patterns to scan (overrides the manifest)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Fallback output directory (overrides the manifest)")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "Generated type name prefix (overrides the manifest)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Report what would be generated without writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(generateConfigPath)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.Packages = args
	} else if len(generatePackages) > 0 {
		cfg.Packages = generatePackages
	}

	if generateOutput != "" {
		cfg.Output = generateOutput
	}

	if generatePrefix != "" {
		cfg.Prefix = generatePrefix
	}

	d, err := discover.NewLoader().LoadPackages(cfg.Packages...)
	if err != nil {
		return err
	}

	if cfg.NullSafe {
		for _, disp := range d.Dispatchers {
			disp.NullSafe = true
		}
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		Prefix:    cfg.Prefix,
		OutputDir: cfg.Output,
	})

	result := g.RunPass(gen.PassInput{
		Dispatchers: d.Dispatchers,
		ValueTypes:  d.ValueTypes,
		Universe:    d.Universe,
	})

	if generateDryRun {
		for _, artifact := range result.Artifacts {
			fmt.Printf("would write %s/%s (%d bytes)\n",
				artifact.Dir, artifact.File.Filename, len(artifact.File.Content))
		}
	} else {
		written := gen.WriteArtifacts(result.Artifacts, &result.Diagnostics)
		for _, path := range written {
			fmt.Printf("✓ Generated %s\n", path)
		}
	}

	reportDiagnostics(result)

	return result.Diagnostics.Error()
}

func reportDiagnostics(result *gen.PassResult) {
	for _, diag := range result.Diagnostics.Warnings {
		fmt.Printf("warning: %s\n", diag)
	}

	for _, diag := range result.Diagnostics.Infos {
		fmt.Printf("info: %s\n", diag)
	}
}
