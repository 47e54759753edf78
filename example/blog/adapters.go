package blog

import (
	"encoding/json"
	"fmt"

	"dispatcher-generator/adapter"
)

// jsonAdapter round-trips a single concrete type through encoding/json.
type jsonAdapter[T any] struct{}

func (jsonAdapter[T]) Marshal(v any) ([]byte, error) {
	t, ok := v.(T)
	if !ok {
		return nil, fmt.Errorf("unexpected value of type %T", v)
	}

	return json.Marshal(t)
}

func (jsonAdapter[T]) Unmarshal(data []byte) (any, error) {
	var t T
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	return t, nil
}

// PostAdapter handles Post values.
func PostAdapter(serializer *adapter.Serializer) adapter.Of[Post] {
	return jsonAdapter[Post]{}
}

// CommentAdapter handles Comment values.
func CommentAdapter() adapter.Of[Comment] {
	return jsonAdapter[Comment]{}
}

// PairAdapter handles Pair values. The dispatcher instantiates it erased
// and forwards the request's type arguments.
func PairAdapter[K comparable, V any](serializer *adapter.Serializer, args []adapter.TypeKey) adapter.Of[Pair[K, V]] {
	return jsonAdapter[Pair[K, V]]{}
}

// draftAdapter handles unpublished drafts.
func draftAdapter(serializer *adapter.Serializer) adapter.Of[draft] {
	return jsonAdapter[draft]{}
}
