// Package model holds the resolved declaration model the generator
// operates on. A host frontend (internal/discover for Go source) produces
// these values; everything downstream is a pure function of them.
package model

import (
	"dispatcher-generator/internal/common"
)

// AdapterTypeName is the structural name of the adapter contract in
// factory method return types. A factory method opts its value type in by
// returning Adapter parameterized with exactly that type.
const AdapterTypeName = "dispatcher-generator/adapter.Of"

// FactoryCapability is the fully qualified name of the capability a
// dispatcher declaration must implement.
const FactoryCapability = "dispatcher-generator/adapter.Factory"

// Visibility is the declared access level of a type or method.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPackage
	VisibilityProtected
	VisibilityPublic
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPackage:
		return "package"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a structural type reference. Name is the erased (raw) fully
// qualified type name; Args carries type arguments when present.
type TypeRef struct {
	Name string
	Args []TypeRef
}

// Equal reports deep structural equality of two type references.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}

	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}

	return true
}

// AdapterOf returns the return type a factory method must declare to opt
// the given erased type in.
func AdapterOf(erased string) TypeRef {
	return TypeRef{Name: AdapterTypeName, Args: []TypeRef{{Name: erased}}}
}

// FactoryMethod is a candidate adapter factory callable declared by a
// value type.
type FactoryMethod struct {
	Name       string
	Visibility Visibility
	// Static is true for callables that need no receiver instance. The Go
	// frontend maps package-level functions here.
	Static  bool
	Params  []TypeRef
	Returns TypeRef
}

// ValueType is an immutable value type declaration discovered by the
// host. Methods are kept in declared order; the method resolver relies on
// that order for first-match-wins.
type ValueType struct {
	Package    string
	Name       string
	Visibility Visibility
	// TypeParams is the number of declared type parameters; > 0 marks the
	// type as generic.
	TypeParams int
	Methods    []FactoryMethod
}

// Key returns the erased fully qualified name, e.g. "example/blog.Post".
func (v *ValueType) Key() string {
	if v.Package == "" {
		return v.Name
	}

	return v.Package + "." + v.Name
}

// Generic reports whether the type declares type parameters.
func (v *ValueType) Generic() bool {
	return v.TypeParams > 0
}

// Dispatcher is a user declaration requesting factory generation.
type Dispatcher struct {
	Package    string
	Name       string
	Visibility Visibility
	// NullSafe requests that every dispatched adapter be wrapped in the
	// null-safety decorator.
	NullSafe bool
	// Abstract is true when the declaration has no concrete body of its
	// own (an interface type in the Go frontend).
	Abstract bool
	// PackageName is the short Go package name for the package clause of
	// generated output. Optional; defaults to the last path element.
	PackageName string
	// Dir is the directory the declaration lives in, when known. Used to
	// place generated output next to the declaration.
	Dir string
}

// Key returns the fully qualified declaration name.
func (d *Dispatcher) Key() string {
	if d.Package == "" {
		return d.Name
	}

	return d.Package + "." + d.Name
}
