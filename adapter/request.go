package adapter

import "strings"

// TypeKey identifies an erased (raw) type by its fully qualified name,
// e.g. "example/blog.Post". Type arguments are never part of a TypeKey;
// they travel separately in TypeRequest.Args.
type TypeKey string

// AssignableTo reports whether an adapter registered for candidate can
// serve values of type k. Erased value types have no subtype relation in
// Go, so today this is name identity; dispatch chains still call it so a
// subtype registry can slot in behind one function.
func (k TypeKey) AssignableTo(candidate TypeKey) bool {
	return k == candidate
}

// TypeRequest describes a requested type as a tagged union: a plain
// request carries only the raw type, a parameterized request additionally
// carries the type arguments. The split is resolved once by the caller;
// dispatch never re-inspects the concrete type.
type TypeRequest struct {
	// Raw is the erased type being requested.
	Raw TypeKey
	// Args holds the type arguments when the request is parameterized.
	// nil or empty for plain requests.
	Args []TypeKey
}

// PlainRequest builds a request for a non-generic type.
func PlainRequest(raw TypeKey) TypeRequest {
	return TypeRequest{Raw: raw}
}

// ParameterizedRequest builds a request for a generic type instance.
func ParameterizedRequest(raw TypeKey, args ...TypeKey) TypeRequest {
	return TypeRequest{Raw: raw, Args: args}
}

// Parameterized reports whether the request carries type arguments.
func (r TypeRequest) Parameterized() bool {
	return len(r.Args) > 0
}

// String renders the request in source-like form, e.g. "blog.Pair[string,int]".
func (r TypeRequest) String() string {
	if !r.Parameterized() {
		return string(r.Raw)
	}

	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = string(a)
	}

	return string(r.Raw) + "[" + strings.Join(parts, ",") + "]"
}
