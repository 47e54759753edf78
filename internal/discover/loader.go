// Package discover is the Go-source frontend of the generator. It loads
// packages with go/packages and maps marked declarations onto the model:
//
//   - structs marked `//adapter:value` become value types;
//   - package-level functions returning adapter.Of[V] become V's factory
//     method candidates, in file declaration order;
//   - types marked `//adapter:factory` (optionally `nullsafe`) become
//     dispatcher declarations.
//
// It also builds the embedding graph the capability check walks.
package discover

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"dispatcher-generator/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Directive markers recognized in type doc comments.
const (
	valueDirective   = "adapter:value"
	factoryDirective = "adapter:factory"
	nullSafeArg      = "nullsafe"
)

// Discovery is the fully resolved input for one generation pass.
type Discovery struct {
	Dispatchers []*model.Dispatcher
	ValueTypes  []*model.ValueType
	Universe    *model.Universe
}

// Loader loads Go packages and extracts marked declarations.
type Loader struct {
	universe *model.Universe
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{universe: model.NewUniverse()}
}

// LoadPackages loads the given package patterns and returns everything the
// generation pass needs. Patterns are standard go/packages patterns.
func (l *Loader) LoadPackages(patterns ...string) (*Discovery, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	d := &Discovery{Universe: l.universe}

	for _, pkg := range pkgs {
		if err := l.processPackage(pkg, d); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return d, nil
}

// processPackage extracts marked declarations from one loaded package.
func (l *Loader) processPackage(pkg *packages.Package, d *Discovery) error {
	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}

	// Index the package's value types first so factory functions can be
	// attached regardless of relative declaration position.
	valueTypes := make(map[string]*model.ValueType)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				l.recordTypeNode(pkg, ts.Name.Name)

				doc := ts.Doc
				if doc == nil {
					doc = gd.Doc
				}

				if _, ok := directiveOf(doc, valueDirective); ok {
					vt := l.valueTypeOf(pkg, ts)
					if vt != nil {
						valueTypes[vt.Name] = vt
						d.ValueTypes = append(d.ValueTypes, vt)
					}
				}

				if args, ok := directiveOf(doc, factoryDirective); ok {
					d.Dispatchers = append(d.Dispatchers, l.dispatcherOf(pkg, ts, args, dir))
				}
			}
		}
	}

	// Attach factory function candidates in file declaration order.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv != nil {
				continue
			}

			l.attachFactoryCandidate(pkg, fd, valueTypes)
		}
	}

	return nil
}

// valueTypeOf maps a marked struct declaration onto the model.
func (l *Loader) valueTypeOf(pkg *packages.Package, ts *ast.TypeSpec) *model.ValueType {
	obj := pkg.Types.Scope().Lookup(ts.Name.Name)
	if obj == nil {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil
	}

	return &model.ValueType{
		Package:    pkg.PkgPath,
		Name:       ts.Name.Name,
		Visibility: visibilityOf(ts.Name.Name),
		TypeParams: named.TypeParams().Len(),
	}
}

// dispatcherOf maps a marked factory declaration onto the model.
func (l *Loader) dispatcherOf(pkg *packages.Package, ts *ast.TypeSpec, args string, dir string) *model.Dispatcher {
	abstract := false

	if obj := pkg.Types.Scope().Lookup(ts.Name.Name); obj != nil {
		_, abstract = obj.Type().Underlying().(*types.Interface)
	}

	return &model.Dispatcher{
		Package:     pkg.PkgPath,
		Name:        ts.Name.Name,
		Visibility:  visibilityOf(ts.Name.Name),
		NullSafe:    hasArg(args, nullSafeArg),
		Abstract:    abstract,
		PackageName: pkg.Name,
		Dir:         dir,
	}
}

// attachFactoryCandidate records a package-level function as a factory
// method candidate of the value type its return type names, if any.
func (l *Loader) attachFactoryCandidate(pkg *packages.Package, fd *ast.FuncDecl, valueTypes map[string]*model.ValueType) {
	obj := pkg.TypesInfo.Defs[fd.Name]
	if obj == nil {
		return
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok || sig.Results().Len() != 1 {
		return
	}

	erased := adapterTargetOf(sig.Results().At(0).Type())
	if erased == "" {
		return
	}

	// Only functions in the value type's own package count as its
	// declared methods.
	vt, ok := valueTypes[strings.TrimPrefix(erased, pkg.PkgPath+".")]
	if !ok || vt.Key() != erased {
		return
	}

	method := model.FactoryMethod{
		Name:       fd.Name.Name,
		Visibility: visibilityOf(fd.Name.Name),
		Static:     true,
		Returns:    model.AdapterOf(erased),
	}

	for i := 0; i < sig.Params().Len(); i++ {
		method.Params = append(method.Params, model.TypeRef{
			Name: sig.Params().At(i).Type().String(),
		})
	}

	vt.Methods = append(vt.Methods, method)
}

// adapterTargetOf returns the erased key of V when t is adapter.Of[V],
// or "" otherwise.
func adapterTargetOf(t types.Type) string {
	named, ok := t.(*types.Named)
	if !ok {
		return ""
	}

	if erasedKeyOf(named) != model.AdapterTypeName {
		return ""
	}

	args := named.TypeArgs()
	if args.Len() != 1 {
		return ""
	}

	arg, ok := args.At(0).(*types.Named)
	if !ok {
		return ""
	}

	return erasedKeyOf(arg)
}

// erasedKeyOf returns the fully qualified name of a named type with any
// type arguments stripped.
func erasedKeyOf(named *types.Named) string {
	obj := named.Origin().Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

// recordTypeNode adds the type's embedding edges to the universe:
// embedded interfaces (and, for structs, embedded fields) are the edges
// the capability walk follows.
func (l *Loader) recordTypeNode(pkg *packages.Package, name string) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return
	}

	key := erasedKeyOf(named)
	node := &model.TypeNode{}

	switch u := named.Underlying().(type) {
	case *types.Interface:
		for i := 0; i < u.NumEmbeddeds(); i++ {
			if embedded, ok := u.EmbeddedType(i).(*types.Named); ok {
				node.Interfaces = append(node.Interfaces, erasedKeyOf(embedded))
			}
		}

	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			field := u.Field(i)
			if !field.Embedded() {
				continue
			}

			embedded, ok := field.Type().(*types.Named)
			if !ok {
				continue
			}

			if _, isIface := embedded.Underlying().(*types.Interface); isIface {
				node.Interfaces = append(node.Interfaces, erasedKeyOf(embedded))
			} else if node.Supertype == "" {
				node.Supertype = erasedKeyOf(embedded)
			}
		}
	}

	l.universe.Add(key, node)

	// Edge targets outside the scanned packages still need to resolve
	// during the walk; register them as leaf nodes.
	for _, iface := range node.Interfaces {
		if l.universe.Node(iface) == nil {
			l.universe.Add(iface, &model.TypeNode{})
		}
	}

	if node.Supertype != "" && l.universe.Node(node.Supertype) == nil {
		l.universe.Add(node.Supertype, &model.TypeNode{})
	}
}

// directiveOf scans a doc comment for a directive line and returns its
// arguments when found.
func directiveOf(doc *ast.CommentGroup, directive string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		line := strings.TrimPrefix(c.Text, "//")

		if line == directive {
			return "", true
		}

		if rest, ok := strings.CutPrefix(line, directive+" "); ok {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}

// hasArg reports whether a directive argument list contains the word.
func hasArg(args, word string) bool {
	for _, f := range strings.Fields(args) {
		if f == word {
			return true
		}
	}

	return false
}
