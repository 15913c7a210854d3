package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// NotFoundError is returned by Resolve when a type name has no registered
// descriptor. Lookup is exact and case-sensitive.
type NotFoundError struct {
	TypeName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("type '%s' not found in registry", e.TypeName)
}

// Registry holds structural descriptors for the host application's registered
// types. It is safe for concurrent use: the read lock is acquired and released
// per individual lookup, never held across a recursive discovery walk, so
// nested lookups cannot self-deadlock. The flip side is that a multi-type or
// deeply nested discovery call sees no consistent snapshot if the registry
// mutates concurrently.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeDescriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]TypeDescriptor),
	}
}

// Register adds or replaces a descriptor under its type name.
func (r *Registry) Register(desc TypeDescriptor) error {
	if desc.TypeName == "" {
		return fmt.Errorf("descriptor has no type name")
	}
	if desc.Kind == "" {
		return fmt.Errorf("descriptor for '%s' has no kind", desc.TypeName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[desc.TypeName] = desc
	return nil
}

// RegisterAll registers every descriptor, stopping at the first invalid one.
func (r *Registry) RegisterAll(descs ...TypeDescriptor) error {
	for _, desc := range descs {
		if err := r.Register(desc); err != nil {
			return err
		}
	}
	return nil
}

// LoadJSON registers every descriptor from a serialized Snapshot. This is how
// a host application hands its reflection data to the discovery engine.
func (r *Registry) LoadJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal registry snapshot: %w", err)
	}
	return r.RegisterAll(snap.Types...)
}

// Resolve returns the descriptor registered under the exact type name.
// Returns a *NotFoundError if the name is absent.
func (r *Registry) Resolve(typeName string) (TypeDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.types[typeName]
	if !ok {
		return TypeDescriptor{}, &NotFoundError{TypeName: typeName}
	}
	return desc, nil
}

// Contains reports whether a type name is registered.
func (r *Registry) Contains(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[typeName]
	return ok
}

// Kind returns the structural category of a registered type name. The second
// return is false when the name is not registered.
func (r *Registry) Kind(typeName string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.types[typeName]
	if !ok {
		return "", false
	}
	return desc.Kind, true
}

// Types returns all registered descriptors sorted by type name.
func (r *Registry) Types() []TypeDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]TypeDescriptor, 0, len(r.types))
	for _, desc := range r.types {
		result = append(result, desc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TypeName < result[j].TypeName
	})
	return result
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Reset clears the registry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = make(map[string]TypeDescriptor)
}
