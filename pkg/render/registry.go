package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores backends by ID, providing discovery and duplication
// safeguards. An engine holds one Registry; callers can share it across
// engines for dependency injection.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
	}
}

// Register adds a backend by its ID(). Duplicate IDs return an error.
func (r *Registry) Register(backend Backend) error {
	if backend == nil {
		return fmt.Errorf("render: backend is required")
	}
	id := backend.ID()
	if id == "" {
		return fmt.Errorf("render: backend ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[id]; exists {
		return fmt.Errorf("render: backend %q already registered", id)
	}

	r.backends[id] = backend
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(backend Backend) {
	if err := r.Register(backend); err != nil {
		panic(err)
	}
}

// Get retrieves a backend by ID.
func (r *Registry) Get(id string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[id]
	if !ok {
		return nil, fmt.Errorf("render: backend %q not found", id)
	}
	return backend, nil
}

// MustGet panics if the backend is missing.
func (r *Registry) MustGet(id string) Backend {
	backend, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return backend
}

// List returns a sorted list of backend IDs.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.backends))
	for id := range r.backends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a backend is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.backends[id]
	return ok
}
