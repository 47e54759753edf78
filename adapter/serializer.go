package adapter

import (
	"fmt"
	"sync"
)

// Serializer is the handle threaded into adapter factory functions. It
// chains registered factories and caches lookups, so adapters for nested
// value types can be obtained from inside another adapter.
type Serializer struct {
	factories []Factory

	mu    sync.RWMutex
	cache map[string]Adapter
}

// NewSerializer builds a serializer over the given factories. Factories
// are consulted in registration order; the first non-nil adapter wins.
func NewSerializer(factories ...Factory) *Serializer {
	return &Serializer{
		factories: factories,
		cache:     make(map[string]Adapter),
	}
}

// Adapter returns the adapter for an unannotated request, or an error when
// no registered factory recognizes the type. Results, including misses,
// are cached per request.
func (s *Serializer) Adapter(req TypeRequest) (Adapter, error) {
	key := req.String()

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()

	if ok {
		if cached == nil {
			return nil, fmt.Errorf("no adapter for %s", key)
		}

		return cached, nil
	}

	var found Adapter
	for _, f := range s.factories {
		if a := f.Create(req, nil, s); a != nil {
			found = a
			break
		}
	}

	s.mu.Lock()
	s.cache[key] = found
	s.mu.Unlock()

	if found == nil {
		return nil, fmt.Errorf("no adapter for %s", key)
	}

	return found, nil
}
