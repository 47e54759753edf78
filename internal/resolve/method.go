package resolve

import (
	"dispatcher-generator/internal/model"
)

// Supported factory parameter counts. Plain types take at most the
// serializer handle; only generic types may additionally take the
// type-argument slice.
const (
	maxPlainParams   = 1
	maxGenericParams = 2
)

// FactoryMethodOf scans the type's directly declared methods for its
// adapter factory: static, not private, returning the adapter contract
// parameterized with exactly this type's erased name, and declaring a
// supported parameter shape for the type. The first structural match in
// declared order wins. A nil result is a normal outcome, not an error;
// such types silently stay out of generated dispatchers.
func FactoryMethodOf(vt *model.ValueType) *model.FactoryMethod {
	want := model.AdapterOf(vt.Key())

	maxParams := maxPlainParams
	if vt.Generic() {
		maxParams = maxGenericParams
	}

	for i := range vt.Methods {
		m := &vt.Methods[i]

		if !m.Static || m.Visibility == model.VisibilityPrivate {
			continue
		}

		if len(m.Params) > maxParams {
			continue
		}

		if m.Returns.Equal(want) {
			return m
		}
	}

	return nil
}
