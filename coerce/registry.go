package coerce

import (
	"fmt"
	"strings"
	"sync"

	"value-objects/primitive"
)

// Registry resolves type descriptors by name. Primitive kind names and
// their aliases are always known.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Type)}
}

// Register adds a named descriptor. Names are case-insensitive and must not
// shadow a primitive kind or an earlier registration.
func (r *Registry) Register(name string, t Type) error {
	key := registryKey(name)
	if key == "" {
		return fmt.Errorf("coerce: register: empty type name")
	}

	if _, ok := primitive.ParseKind(key); ok {
		return fmt.Errorf("coerce: register: %q is a primitive type", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.types == nil {
		r.types = make(map[string]Type)
	}

	if _, ok := r.types[key]; ok {
		return fmt.Errorf("coerce: register: type %q already registered", name)
	}

	r.types[key] = t

	return nil
}

func (r *Registry) Lookup(name string) (Type, bool) {
	key := registryKey(name)

	if k, ok := primitive.ParseKind(key); ok {
		return Kind(k), true
	}

	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[key]

	return t, ok
}

// Resolve looks up every name in order. The first unknown name fails with
// ErrUnknownType.
func (r *Registry) Resolve(names ...string) ([]Type, error) {
	types := make([]Type, 0, len(names))
	for _, name := range names {
		t, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("coerce: %w: %q", ErrUnknownType, name)
		}
		types = append(types, t)
	}

	return types, nil
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
