package session

import (
	"sync"

	"go.uber.org/zap"
)

// Registry tracks the live views by id. Views remove themselves on
// teardown, so a lookup never returns a surface that finished retraction
// before the lookup started.
type Registry struct {
	log *zap.Logger

	mu    sync.RWMutex
	views map[string]*View
}

// NewRegistry creates an empty registry.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		log:   log,
		views: make(map[string]*View),
	}
}

// Add registers a live view.
func (r *Registry) Add(v *View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[v.ID()] = v
}

// Get returns the view for id, if it is still live.
func (r *Registry) Get(id string) (*View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[id]
	return v, ok
}

// Remove drops a view from the registry. Removing an unknown id is a no-op;
// the expiry callback and an explicit close may both try.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, id)
}

// Len reports the number of live views.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
