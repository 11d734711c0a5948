package emit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores emitters under their Name(). Lookup is case-insensitive so
// a CLI flag like -emitter GoFile still resolves; a failed lookup reports the
// registered names so callers can correct the flag without a second round
// trip.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]Emitter),
	}
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds an emitter by its Name(). Names that fold to an already
// registered key return an error.
func (r *Registry) Register(emitter Emitter) error {
	if emitter == nil {
		return fmt.Errorf("emit: emitter is required")
	}
	key := registryKey(emitter.Name())
	if key == "" {
		return fmt.Errorf("emit: emitter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emitters[key]; exists {
		return fmt.Errorf("emit: emitter %q already registered", emitter.Name())
	}

	r.emitters[key] = emitter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(emitter Emitter) {
	if err := r.Register(emitter); err != nil {
		panic(err)
	}
}

// Get retrieves an emitter by name, ignoring case.
func (r *Registry) Get(name string) (Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emitter, ok := r.emitters[registryKey(name)]
	if !ok {
		if len(r.emitters) == 0 {
			return nil, fmt.Errorf("emit: emitter %q not found; none registered", name)
		}
		return nil, fmt.Errorf("emit: emitter %q not found; registered: %s", name, strings.Join(r.names(), ", "))
	}
	return emitter, nil
}

// List returns the registered emitter names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.names()
}

// names assumes the caller holds at least a read lock.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.emitters))
	for _, emitter := range r.emitters {
		names = append(names, emitter.Name())
	}
	sort.Strings(names)
	return names
}

// Has reports whether an emitter is registered under the name, ignoring case.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.emitters[registryKey(name)]
	return ok
}
