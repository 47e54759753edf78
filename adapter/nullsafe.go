package adapter

import "bytes"

var nullLiteral = []byte("null")

// NullSafe wraps an adapter so that nil values and serialized nulls
// short-circuit before reaching the delegate. Wrapping is idempotent: an
// already null-safe adapter is returned unchanged, so factories that
// apply it unconditionally never double-wrap.
func NullSafe(a Adapter) Adapter {
	if a == nil {
		return nil
	}

	if _, ok := a.(*nullSafeAdapter); ok {
		return a
	}

	return &nullSafeAdapter{delegate: a}
}

type nullSafeAdapter struct {
	delegate Adapter
}

func (n *nullSafeAdapter) Marshal(v any) ([]byte, error) {
	if v == nil {
		return nullLiteral, nil
	}

	return n.delegate.Marshal(v)
}

func (n *nullSafeAdapter) Unmarshal(data []byte) (any, error) {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		return nil, nil
	}

	return n.delegate.Unmarshal(data)
}
