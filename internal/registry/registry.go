// Package registry maps selector strings to ordered provider chains.
package registry

import (
	"fmt"
	"sync"

	"github.com/mwnd/breakhook/internal/provider"
)

// Registry holds the selector bindings the resolver dispatches on.
type Registry struct {
	bindings sync.Map // selector -> []provider.Provider
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		bindings: sync.Map{},
	}
}

// Bind registers a provider chain for a selector value, replacing any
// previous binding. A chain of length one is strict: if its provider is
// absent, resolution fails. Longer chains fall through to the next provider.
//
// Example:
//
//	reg.Bind("1", attach, console, brk)
func (r *Registry) Bind(selector string, chain ...provider.Provider) {
	r.bindings.Store(selector, chain)
}

// Chain returns the provider chain bound to a selector, or nil if the
// selector is unbound.
func (r *Registry) Chain(selector string) []provider.Provider {
	v, ok := r.bindings.Load(selector)
	if !ok {
		return nil
	}
	return v.([]provider.Provider)
}

// ListBindings prints all selector bindings to stdout.
func (r *Registry) ListBindings() {
	r.bindings.Range(func(key, value interface{}) bool {
		names := ""
		for i, p := range value.([]provider.Provider) {
			if i > 0 {
				names += " -> "
			}
			names += p.Name()
		}
		fmt.Printf("Selector %q: %s\n", key.(string), names)
		return true
	})
}
