// Package function implements LKit's fixed built-in operator set (the
// arithmetic, relational, and logical functions the parser resolves a head
// token against) and the name-keyed registry the environment uses as its
// function table.
package function

import (
	"sort"
	"sync"

	"lkit/node"
)

// Registry is the environment's function table: a name-keyed, owning
// collection of functions. Re-registering a name destroys the old
// instance's registration (the function value itself is simply replaced;
// Go's GC reclaims it once nothing references it).
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]node.Function
}

// NewRegistry returns an empty function table.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]node.Function)}
}

// Register adds or replaces the function under its own Name().
func (r *Registry) Register(fn node.Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[fn.Name()] = fn
}

// Get looks up a function by name.
func (r *Registry) Get(name string) (node.Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Remove deletes a function by name, reporting whether it was present.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[name]; !ok {
		return false
	}
	delete(r.funcs, name)
	return true
}

// Clear empties the table.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs = make(map[string]node.Function)
}

// UseDefaults registers the fixed built-in set (see Defaults), leaving any
// other already-registered functions untouched.
func (r *Registry) UseDefaults() {
	for _, fn := range Defaults() {
		r.Register(fn)
	}
}

// Names returns the registered function names, sorted for deterministic
// iteration (table dumps, equality checks).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two function tables register the same set of
// names. Built-in functions are either stateless or carry only a small
// fixed discriminator (the comparison/logical variant), so two tables with
// the same registered names behave identically for LKit's closed operator
// set; this is the "equal by name" element-wise comparison the environment
// uses for its own equality check.
func (r *Registry) Equal(other *Registry) bool {
	if other == nil {
		return false
	}
	a, b := r.Names(), other.Names()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
