// Package resolve decides which value types participate in a generated
// dispatcher: visibility filtering relative to the dispatcher's package,
// locating the adapter factory method, and checking that a dispatcher
// declaration actually implements the factory capability.
package resolve

import (
	"dispatcher-generator/internal/model"
)

// visibleFrom reports whether a declaration with the given visibility and
// defining package can be referenced from dispatcherPkg.
func visibleFrom(v model.Visibility, declaringPkg, dispatcherPkg string) bool {
	switch v {
	case model.VisibilityPrivate:
		return false
	case model.VisibilityPackage, model.VisibilityProtected:
		return declaringPkg == dispatcherPkg
	default:
		return true
	}
}

// Eligible reports whether the value type's generated adapter belongs in a
// dispatcher defined in dispatcherPkg, and returns the factory method that
// makes it eligible. Pure function: no diagnostics, no side effects. Types
// without a resolvable factory method are simply not eligible.
func Eligible(vt *model.ValueType, dispatcherPkg string) (*model.FactoryMethod, bool) {
	if !visibleFrom(vt.Visibility, vt.Package, dispatcherPkg) {
		return nil, false
	}

	method := FactoryMethodOf(vt)
	if method == nil {
		return nil, false
	}

	// The method must pass the same visibility test as its type.
	if !visibleFrom(method.Visibility, vt.Package, dispatcherPkg) {
		return nil, false
	}

	return method, true
}
