package engine

import (
	"sort"
	"sync"

	"github.com/goliatone/go-quillmark/pkg/quill"
)

// Registry stores registered quills by name, each name holding its
// versions in ascending order. Lookups are read-locked and registration is
// writer-exclusive, so one Registry can back concurrent callers.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]quill.Quill
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string][]quill.Quill),
	}
}

// Register inserts a quill, keeping the per-name version list ascending.
// Re-registering an existing (name, version) pair replaces the prior
// entry, so equal versions never coexist.
func (r *Registry) Register(q quill.Quill) {
	r.mu.Lock()
	defer r.mu.Unlock()

	versions := r.entries[q.Name()]
	for i, existing := range versions {
		if existing.Version().Equal(q.Version()) {
			versions[i] = q
			return
		}
	}

	versions = append(versions, q)
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Version().Less(versions[j].Version())
	})
	r.entries[q.Name()] = versions
}

// Resolve returns the quill matching the selector, or false when no
// registered version satisfies it. Resolution never errors: absence is
// the signal.
func (r *Registry) Resolve(sel Selector) (quill.Quill, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.entries[sel.Name]
	if len(versions) == 0 {
		return quill.Quill{}, false
	}

	switch sel.Kind {
	case SpecExact:
		for _, q := range versions {
			if q.Version().Equal(sel.Exact) {
				return q, true
			}
		}
		return quill.Quill{}, false
	case SpecMajor:
		for i := len(versions) - 1; i >= 0; i-- {
			if versions[i].Version().Major() == sel.Major {
				return versions[i], true
			}
		}
		return quill.Quill{}, false
	default:
		return versions[len(versions)-1], true
	}
}

// Remove drops every version registered under name, reporting whether any
// entry existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	return true
}

// Names returns the registered quill names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions returns the versions registered under name, ascending. Empty
// when the name is unknown.
func (r *Registry) Versions(name string) []quill.Version {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[name]
	versions := make([]quill.Version, 0, len(entries))
	for _, q := range entries {
		versions = append(versions, q.Version())
	}
	return versions
}
