package gen

import (
	"fmt"
	"strings"

	"dispatcher-generator/internal/plan"
)

// Factory call arities the generator recognizes. Arity 2 is the
// serializer handle plus the type-argument slice and only occurs on
// generic value types.
const (
	arityBare        = 0
	aritySerializer  = 1
	arityWithArgs    = 2
	serializerParam  = "serializer"
	typeArgsArgument = "req.Args"
)

// buildInvocation renders the factory call expression for one dispatch
// branch, including null-safety wrapping when requested. It returns ""
// for a generic pair whose method cannot accept type arguments: the
// branch still matches but invokes nothing. That degraded shape is
// long-standing observable behavior, kept on purpose.
func (g *Generator) buildInvocation(pair plan.Pair, qualifier string, nullSafe bool) string {
	method := pair.Method

	if pair.Type.Generic() && len(method.Params) < arityWithArgs {
		return ""
	}

	call := qualifier + method.Name

	// Erased instantiation: the concrete type parameters never influence
	// dispatch, so generic factories are pinned with `any`.
	if pair.Type.Generic() && pair.Type.TypeParams > 0 {
		anys := make([]string, pair.Type.TypeParams)
		for i := range anys {
			anys[i] = "any"
		}

		call += "[" + strings.Join(anys, ", ") + "]"
	}

	// Resolution only admits the two-parameter shape on generic types, so
	// the type-argument slice is never forwarded to a plain factory.
	switch len(method.Params) {
	case arityBare:
		call += "()"
	case aritySerializer:
		call += "(" + serializerParam + ")"
	default:
		call += "(" + serializerParam + ", " + typeArgsArgument + ")"
	}

	if nullSafe {
		call = fmt.Sprintf("adapter.NullSafe(%s)", call)
	}

	return call
}
