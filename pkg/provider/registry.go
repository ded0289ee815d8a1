package provider

import (
	"fmt"
	"sync"
)

// Registry holds providers by name and remembers registration order.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	providers map[string]Provider
}

// NewRegistry creates a registry pre-populated with providers, registered in order.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		r.Register(p.Name(), p)
	}
	return r
}

// Register adds p under name. Registering an existing name replaces the
// provider but keeps its original position.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Names returns provider names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	entries := r.entries()
	out := make([]Provider, len(entries))
	for i, e := range entries {
		out[i] = e.provider
	}
	return out
}

// entries returns a consistent ordered view of the registry.
func (r *Registry) entries() []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, entry{name: name, provider: r.providers[name]})
	}
	return out
}

type entry struct {
	name     string
	provider Provider
}
