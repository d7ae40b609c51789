package ggart

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// registry holds every registered design, keyed by collection.
type registry struct {
	mu          sync.RWMutex
	collections map[string][]Design
	ids         map[string]struct{}
}

var designs = newRegistry()

func newRegistry() *registry {
	return &registry{
		collections: make(map[string][]Design),
		ids:         make(map[string]struct{}),
	}
}

func (r *registry) register(d Design) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[d.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDesign, d.ID())
	}
	r.ids[d.ID()] = struct{}{}
	r.collections[d.Collection] = append(r.collections[d.Collection], d)
	return nil
}

func (r *registry) lookup(collection, name string) (Design, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.collections[collection] {
		if d.Name == name {
			return d, true
		}
	}
	return Design{}, false
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry) list(collection string) []Design {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.collections[collection])
}

// Register adds a design to the global registry.
// It is safe to call from multiple goroutines.
func Register(d Design) error {
	return designs.register(d)
}

// MustRegister is like Register but panics on error.
// Intended for package init functions.
func MustRegister(ds ...Design) {
	for _, d := range ds {
		if err := Register(d); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the design registered under collection/name.
func Lookup(collection, name string) (Design, bool) {
	return designs.lookup(collection, name)
}

// Collections returns the registered collection names in sorted order.
func Collections() []string {
	return designs.names()
}

// Designs returns the designs of a collection in registration order.
func Designs(collection string) []Design {
	return designs.list(collection)
}

// All returns every registered design, grouped by sorted collection.
func All() []Design {
	var all []Design
	for _, c := range Collections() {
		all = append(all, Designs(c)...)
	}
	return all
}

// Select resolves selection patterns to designs. A pattern is either a
// collection name, "collection/name", or "collection/prefix*". With no
// patterns every design is selected. Duplicates are removed while keeping
// first-seen order.
func Select(patterns ...string) ([]Design, error) {
	if len(patterns) == 0 {
		return All(), nil
	}
	var out []Design
	seen := make(map[string]bool)
	for _, p := range patterns {
		matched, err := selectOne(p)
		if err != nil {
			return nil, err
		}
		for _, d := range matched {
			if !seen[d.ID()] {
				seen[d.ID()] = true
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func selectOne(pattern string) ([]Design, error) {
	collection, name, hasName := strings.Cut(strings.Trim(pattern, "/"), "/")
	ds := Designs(collection)
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: collection %q", ErrUnknownDesign, collection)
	}
	if !hasName || name == "*" {
		return ds, nil
	}
	var matched []Design
	if prefix, ok := strings.CutSuffix(name, "*"); ok {
		for _, d := range ds {
			if strings.HasPrefix(d.Name, prefix) {
				matched = append(matched, d)
			}
		}
	} else if d, ok := Lookup(collection, name); ok {
		matched = append(matched, d)
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDesign, pattern)
	}
	return matched, nil
}
