package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"dispatcher-generator/internal/diagnostic"
)

// WriteArtifacts writes each generated dispatcher to its directory. A
// write failure abandons only the offending dispatcher and is reported
// against its declaration; remaining artifacts are unaffected. Returns
// the paths written.
func WriteArtifacts(artifacts []*GeneratedDispatcher, diags *diagnostic.Diagnostics) []string {
	var written []string

	for _, a := range artifacts {
		path := filepath.Join(a.Dir, a.File.Filename)

		if err := os.MkdirAll(a.Dir, 0o755); err != nil {
			diags.AddError(diagnostic.CodeEmitFailed,
				fmt.Sprintf("failed to write adapter factory: %v", err), a.Dispatcher.Key())

			continue
		}

		if err := os.WriteFile(path, a.File.Content, 0o644); err != nil {
			diags.AddError(diagnostic.CodeEmitFailed,
				fmt.Sprintf("failed to write adapter factory: %v", err), a.Dispatcher.Key())

			continue
		}

		written = append(written, path)
	}

	return written
}
