package tour

import (
	"fmt"
	"regexp"
	"sync"
)

var globalRegistry = &Registry{
	byName: make(map[string]Routine),
}

// nameRe constrains routine names to kebab-case identifiers.
var nameRe = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Registry maintains the set of demonstration routines in registration order.
// Routines register themselves from package init functions; the order of the
// blank imports in the CLI therefore fixes the order of the tour.
type Registry struct {
	mu      sync.RWMutex
	ordered []string
	byName  map[string]Routine
}

// Register adds a routine to the global registry.
// The name must be a non-empty kebab-case identifier and not already taken.
func Register(r Routine) error {
	if !nameRe.MatchString(r.Name) {
		return fmt.Errorf("registering routine: invalid name %q", r.Name)
	}
	if r.Run == nil {
		return fmt.Errorf("registering routine %q: Run must not be nil", r.Name)
	}

	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	if _, ok := globalRegistry.byName[r.Name]; ok {
		return fmt.Errorf("routine name %q already registered", r.Name)
	}
	globalRegistry.byName[r.Name] = r
	globalRegistry.ordered = append(globalRegistry.ordered, r.Name)
	return nil
}

// MustRegister is a helper that calls Register and panics if an error occurs.
// It is intended for use in package init functions.
func MustRegister(r Routine) {
	if err := Register(r); err != nil {
		panic(err)
	}
}

// Lookup retrieves a routine by name.
func Lookup(name string) (Routine, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	r, ok := globalRegistry.byName[name]
	return r, ok
}

// Routines returns all registered routines in registration order.
func Routines() []Routine {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	result := make([]Routine, 0, len(globalRegistry.ordered))
	for _, name := range globalRegistry.ordered {
		result = append(result, globalRegistry.byName[name])
	}
	return result
}

// ClearRegistry resets the global registry, removing all registered routines.
// This is primarily used for testing purposes.
func ClearRegistry() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.ordered = nil
	globalRegistry.byName = make(map[string]Routine)
}
