package classify

import (
	"strings"
	"sync"
)

// Registry is a thread-safe name → Matcher map. Plan files reference
// tolerable failure kinds by these names.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Matcher
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[string]Matcher)}
}

// Register associates name with m. Empty names and nil matchers are ignored.
func (r *Registry) Register(name string, m Matcher) {
	if r == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" || m == nil {
		return
	}

	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[string]Matcher)
	}
	r.m[name] = m
	r.mu.Unlock()
}

func (r *Registry) Get(name string) (Matcher, bool) {
	if r == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	m, ok := r.m[name]
	r.mu.RUnlock()
	return m, ok && m != nil
}
