// Package gen assembles dispatch plans into generated Go source: one
// factory type per dispatcher declaration, with the generic dispatch
// chain evaluated before the plain one and a final nil fallback.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"dispatcher-generator/internal/common"
	"dispatcher-generator/internal/model"
	"dispatcher-generator/internal/plan"
)

// adapterPkgPath is the import path of the runtime support package every
// generated file depends on.
const adapterPkgPath = "dispatcher-generator/adapter"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Prefix is prepended (with an underscore) to the dispatcher's simple
	// name to form the generated type name.
	Prefix string
	// OutputDir is the fallback directory for generated files when a
	// dispatcher declaration carries no directory of its own.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Prefix:    "AdapterFactory",
		OutputDir: "./generated",
	}
}

// Generator generates dispatcher source files from dispatch plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Prefix == "" {
		config.Prefix = "AdapterFactory"
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "adapter_factory_blog_factory.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// GeneratedDispatcher is the output artifact for one dispatcher
// declaration. Origins lists the declaration and every contributing value
// type, for incremental-rebuild bookkeeping only.
type GeneratedDispatcher struct {
	Dispatcher *model.Dispatcher
	// TypeName is the name of the generated factory type.
	TypeName string
	// Dir is the directory the file should be written to.
	Dir string
	// File is the generated source.
	File GeneratedFile
	// Origins holds the fully qualified names of the dispatcher plus all
	// contributing value types, in emission order.
	Origins []string
}

// importSpec describes one import in a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// templateData holds all data needed for the dispatcher template.
type templateData struct {
	PackageName    string
	TypeName       string
	DispatcherName string
	Imports        []importSpec
	// AssertImplements emits a compile-time check that the generated type
	// satisfies the declared factory interface.
	AssertImplements bool
	// GenericSection and PlainSection are pre-rendered dispatch chains;
	// either may be empty, in which case it is omitted entirely.
	GenericSection string
	PlainSection   string
	// DeclareRawType is false when both sections are empty, so no unused
	// variable is emitted.
	DeclareRawType bool
}

// Generate assembles one dispatcher artifact from its dispatch plan.
// assertImplements should be true only when the declaration is abstract
// and implements the factory capability; best-effort generation for
// invalid declarations skips the compile-time assertion but nothing else.
func (g *Generator) Generate(p *plan.DispatchPlan, assertImplements bool) (*GeneratedDispatcher, error) {
	d := p.Dispatcher
	typeName := g.typeName(d)

	imports := map[string]importSpec{
		adapterPkgPath: {Path: adapterPkgPath},
	}

	data := &templateData{
		PackageName:      packageNameOf(d),
		TypeName:         typeName,
		DispatcherName:   d.Name,
		AssertImplements: assertImplements && d.Package != "",
		DeclareRawType:   !p.Empty(),
	}

	data.GenericSection = g.buildGenericSection(p, imports)
	data.PlainSection = g.buildPlainSection(p, imports)

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	var buf bytes.Buffer
	if err := dispatcherTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	artifact := &GeneratedDispatcher{
		Dispatcher: d,
		TypeName:   typeName,
		Dir:        d.Dir,
		File: GeneratedFile{
			Filename: snakeCase(typeName) + ".go",
			Content:  formatted,
		},
		Origins: []string{d.Key()},
	}

	if artifact.Dir == "" {
		artifact.Dir = g.config.OutputDir
	}

	for _, pair := range p.Pairs() {
		artifact.Origins = append(artifact.Origins, pair.Type.Key())
	}

	return artifact, nil
}

// buildGenericSection renders the parameterized-type dispatch chain, or ""
// when no generic value type opted in.
func (g *Generator) buildGenericSection(p *plan.DispatchPlan, imports map[string]importSpec) string {
	if len(p.Generic) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("if req.Parameterized() {\n")

	for i, pair := range p.Generic {
		if i == 0 {
			b.WriteString("if ")
		} else {
			b.WriteString(" else if ")
		}

		fmt.Fprintf(&b, "rawType == %q {\n", pair.Type.Key())

		inv := g.buildInvocation(pair, g.qualifier(p.Dispatcher, pair, imports), p.Dispatcher.NullSafe)
		if inv != "" {
			fmt.Fprintf(&b, "return %s\n", inv)
		}

		b.WriteString("}")
	}

	b.WriteString("\n\nreturn nil\n}")

	return b.String()
}

// buildPlainSection renders the unconditional assignability chain, or ""
// when no plain value type opted in.
func (g *Generator) buildPlainSection(p *plan.DispatchPlan, imports map[string]importSpec) string {
	if len(p.Plain) == 0 {
		return ""
	}

	var b strings.Builder

	for i, pair := range p.Plain {
		if i == 0 {
			b.WriteString("if ")
		} else {
			b.WriteString(" else if ")
		}

		fmt.Fprintf(&b, "rawType.AssignableTo(%q) {\n", pair.Type.Key())

		inv := g.buildInvocation(pair, g.qualifier(p.Dispatcher, pair, imports), p.Dispatcher.NullSafe)
		fmt.Fprintf(&b, "return %s\n", inv)

		b.WriteString("}")
	}

	return b.String()
}

// qualifier returns the package qualifier for referencing the pair's
// factory method from the dispatcher's package, registering an import when
// the value type lives elsewhere.
func (g *Generator) qualifier(d *model.Dispatcher, pair plan.Pair, imports map[string]importSpec) string {
	pkg := pair.Type.Package
	if pkg == "" || pkg == d.Package {
		return ""
	}

	if spec, ok := imports[pkg]; ok {
		if spec.Alias != "" {
			return spec.Alias + "."
		}

		return common.PkgAlias(pkg) + "."
	}

	alias := common.PkgAlias(pkg)

	// Distinct paths sharing a base name get a deterministic numeric alias.
	for _, spec := range imports {
		name := spec.Alias
		if name == "" {
			name = common.PkgAlias(spec.Path)
		}

		if name == alias {
			alias = fmt.Sprintf("%s%d", alias, len(imports))
			imports[pkg] = importSpec{Alias: alias, Path: pkg}

			return alias + "."
		}
	}

	imports[pkg] = importSpec{Path: pkg}

	return alias + "."
}

// typeName forms the generated type name, mirroring the declaration's
// public/non-public status through the prefix's first rune.
func (g *Generator) typeName(d *model.Dispatcher) string {
	prefix := g.config.Prefix
	if prefix == "" {
		prefix = DefaultGeneratorConfig().Prefix
	}

	if d.Visibility != model.VisibilityPublic {
		runes := []rune(prefix)
		runes[0] = unicode.ToLower(runes[0])
		prefix = string(runes)
	}

	return prefix + "_" + d.Name
}

// packageNameOf returns the package clause name for generated output.
func packageNameOf(d *model.Dispatcher) string {
	if d.PackageName != "" {
		return d.PackageName
	}

	return common.PkgAlias(d.Package)
}

// snakeCase converts a mixed-case type name to a snake_case file stem.
func snakeCase(name string) string {
	var b strings.Builder

	prev := rune(0)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && prev != '_' && !unicode.IsUpper(prev) {
				b.WriteRune('_')
			}

			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}

		prev = r
	}

	return b.String()
}

var dispatcherTemplate = template.Must(template.New("dispatcher").Parse(`// Code generated by dispatcher-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}

// {{.TypeName}} dispatches adapter requests for the value types that
// opted in to {{.DispatcherName}}.
type {{.TypeName}} struct{}
{{if .AssertImplements}}
var _ {{.DispatcherName}} = {{.TypeName}}{}
{{end}}
func ({{.TypeName}}) Create(req adapter.TypeRequest, annotations []string, serializer *adapter.Serializer) adapter.Adapter {
	if len(annotations) != 0 {
		return nil
	}
{{if .DeclareRawType}}
	rawType := req.Raw
{{end}}
{{if .GenericSection}}
{{.GenericSection}}
{{end}}
{{if .PlainSection}}
{{.PlainSection}}
{{end}}
	return nil
}
`))
