package registry

import (
	"sort"

	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
)

// Registry maps (event, action) pairs to handlers. It is process-wide
// configuration: populated once at startup, then read-only for the lifetime
// of the run. A lookup miss for a pair not covered by the skip policy is
// fatal (UnsupportedActionError).
type Registry struct {
	handlers map[domain.ActionKey]ports.Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[domain.ActionKey]ports.Handler),
	}
}

// Register binds a handler to a dispatch key. Registering the same key twice
// overwrites the earlier binding. Must only be called during startup wiring,
// before the first lookup.
func (r *Registry) Register(key domain.ActionKey, h ports.Handler) {
	r.handlers[key] = h
}

// RegisterFunc is Register for plain functions.
func (r *Registry) RegisterFunc(key domain.ActionKey, fn ports.HandlerFunc) {
	r.Register(key, fn)
}

// Lookup returns the handler bound to key, if any.
func (r *Registry) Lookup(key domain.ActionKey) (ports.Handler, bool) {
	h, ok := r.handlers[key]
	return h, ok
}

// Keys returns the registered dispatch keys in stable order, for diagnostics.
func (r *Registry) Keys() []domain.ActionKey {
	keys := make([]domain.ActionKey, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
