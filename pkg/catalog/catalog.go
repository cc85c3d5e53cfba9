// Package catalog defines the versioned language-feature descriptors the
// classifier can recognize.
//
// The catalog is a fixed, insertion-ordered table constructed once at
// process start and passed explicitly to consumers; there is no mutable
// global state.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup for unknown feature ids.
var ErrNotFound = errors.New("feature not found")

// FeatureDescriptor is one catalog entry: a single core-language capability
// introduced at a specific standard. Descriptors are immutable.
type FeatureDescriptor struct {
	ID          string `json:"id"`          // Unique identifier, e.g., "OP01"
	Name        string `json:"name"`        // Human-readable name, e.g., "operator.static-call"
	Group       string `json:"group"`       // Category, e.g., "operators", "consteval"
	MinStandard int    `json:"minStandard"` // Lowest standard ordinal that accepts the construct
	Description string `json:"description"` // Human-readable description

	// Documentation fields for richer feature documentation
	BadExample  string `json:"badExample,omitempty"`  // Code rejected under the previous standard
	GoodExample string `json:"goodExample,omitempty"` // The nearest construct accepted by the previous standard
}

// Catalog is an immutable, insertion-ordered feature table.
type Catalog struct {
	entries []FeatureDescriptor
	byID    map[string]int
}

// New builds a catalog from descriptors, preserving order.
// Duplicate ids are a programmer error and panic at construction.
func New(entries []FeatureDescriptor) *Catalog {
	c := &Catalog{
		entries: make([]FeatureDescriptor, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		if _, dup := c.byID[e.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate feature id %q", e.ID))
		}
		c.byID[e.ID] = i
	}
	return c
}

// Lookup returns the descriptor for id, or ErrNotFound.
func (c *Catalog) Lookup(id string) (FeatureDescriptor, error) {
	i, ok := c.byID[id]
	if !ok {
		return FeatureDescriptor{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.entries[i], nil
}

// All returns the descriptors in insertion order. The returned slice is a
// copy; callers cannot mutate the catalog through it.
func (c *Catalog) All() []FeatureDescriptor {
	out := make([]FeatureDescriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// FloorStandard returns the lowest cataloged MinStandard: the default
// floor when none is configured, and the required standard reported when
// nothing matches. Constructs older than every cataloged gate never
// violate the default floor.
func (c *Catalog) FloorStandard() int {
	floor := 0
	for i, e := range c.entries {
		if i == 0 || e.MinStandard < floor {
			floor = e.MinStandard
		}
	}
	return floor
}
