package thrift

import (
	"context"
	"fmt"
	"sync"

	athrift "github.com/apache/thrift/lib/go/thrift"
)

// MethodFunc marshals one canonical argument tuple onto the wire and
// unmarshals the response. Implementations come from thrift-generated
// service bindings; this package never interprets the tuple itself.
//
// Args arrive ordered catalog, database, table, then narrower identifiers
// and payload objects, as produced by the facade's scope resolution.
type MethodFunc func(ctx context.Context, client athrift.TClient, args []any) (any, error)

// Registry maps metastore method names to their wire handlers. The zero
// value is not usable; create registries with NewRegistry.
//
// Registration normally happens from init functions of binding packages, but
// the registry stays safe for concurrent registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]MethodFunc
}

// DefaultRegistry is used by connections dialed without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty method registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]MethodFunc)}
}

// Register attaches a handler to a method name. Registering the same name
// twice fails with ErrAlreadyRegistered so conflicting bindings surface at
// startup instead of silently shadowing each other.
func (r *Registry) Register(method string, fn MethodFunc) error {
	if method == "" || fn == nil {
		return fmt.Errorf("register: method name and handler are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.methods[method]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, method)
	}
	r.methods[method] = fn
	return nil
}

// MustRegister is Register that panics on error, for use from init
// functions of binding packages.
func (r *Registry) MustRegister(method string, fn MethodFunc) {
	if err := r.Register(method, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the handler registered for method.
func (r *Registry) Lookup(method string) (MethodFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.methods[method]
	return fn, ok
}

// Methods returns the registered method names, for diagnostics.
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	return names
}
