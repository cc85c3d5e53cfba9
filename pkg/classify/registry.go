package classify

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all feature matchers.
var globalRegistry = &registry{
	matchers: make(map[string]MatcherDef),
}

type registry struct {
	mu       sync.RWMutex
	matchers map[string]MatcherDef // keyed by feature id
}

// Register adds a matcher to the global registry.
// Call this from init() functions in matcher packages.
func Register(def MatcherDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.matchers[def.FeatureID] = def
}

// GetAll returns all registered matchers ordered by feature id, so that
// iteration order is stable regardless of registration order.
func GetAll() []MatcherDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]MatcherDef, 0, len(globalRegistry.matchers))
	for _, def := range globalRegistry.matchers {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].FeatureID < defs[j].FeatureID
	})
	return defs
}

// GetByID returns a matcher by its feature id.
func GetByID(id string) (MatcherDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.matchers[id]
	return def, ok
}

// Count returns the number of registered matchers.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.matchers)
}

// Clear removes all registered matchers. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.matchers = make(map[string]MatcherDef)
}
