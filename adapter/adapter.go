// Package adapter defines the runtime contracts shared between user code
// and generated dispatcher factories.
//
// A value type opts in to dispatch by declaring a package-level factory
// function returning Of[V]. The generator collects those factories into a
// single Factory implementation that routes a TypeRequest to the right
// adapter.
package adapter

// Adapter converts values of one type to and from their serialized form.
type Adapter interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte) (any, error)
}

// Of marks an adapter as the designated adapter for values of type T.
// Factory functions must use it as their return type so the generator can
// match the adapter to its value type.
type Of[T any] interface {
	Adapter
}

// Factory supplies an adapter for a requested type, or nil when the
// request is not recognized. Implementations must be safe for concurrent
// use; generated factories are stateless.
type Factory interface {
	Create(req TypeRequest, annotations []string, serializer *Serializer) Adapter
}
