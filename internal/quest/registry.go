package quest

import (
	"fmt"
	"sort"
)

// Pool is a named, immutable, ordered collection of items used as a
// sampling source. Construct with NewPool; the item slice is private
// so nothing can mutate a pool after construction.
type Pool struct {
	name   string
	prefix string
	items  []Item
}

// NewPool builds a pool by deterministically expanding seeds through
// the given rules. The prefix must be a single uppercase letter and
// every seed ID must carry it.
func NewPool(name, prefix string, seeds []Item, rules []ExpandRule) (*Pool, error) {
	if name == "" {
		return nil, fmt.Errorf("pool name is required")
	}
	if len(prefix) != 1 || prefix[0] < 'A' || prefix[0] > 'Z' {
		return nil, fmt.Errorf("pool %q: prefix must be a single uppercase letter, got %q", name, prefix)
	}
	items, err := expand(prefix, seeds, rules)
	if err != nil {
		return nil, fmt.Errorf("pool %q: %w", name, err)
	}
	return &Pool{name: name, prefix: prefix, items: items}, nil
}

// Name returns the pool name.
func (p *Pool) Name() string { return p.name }

// Prefix returns the single-letter ID prefix.
func (p *Pool) Prefix() string { return p.prefix }

// Len returns the number of items in the pool.
func (p *Pool) Len() int { return len(p.items) }

// Items returns a copy of the item sequence in pool order.
// The copy keeps the underlying pool immutable.
func (p *Pool) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Registry holds the registered pools. The three built-in pools are
// always present; compiled pool packs may be registered on top at
// startup. After setup the registry is read-only and safe for
// concurrent use without locking.
type Registry struct {
	pools map[string]*Pool
	names []string // registration order
}

// NewRegistry builds a registry containing the built-in pools
// (proof, quest, note), fully expanded.
//
// Construction is deterministic: two fresh registries always hold
// byte-identical item sequences.
func NewRegistry() (*Registry, error) {
	r := &Registry{pools: make(map[string]*Pool)}
	for _, def := range builtinPools() {
		p, err := NewPool(def.name, def.prefix, def.seeds, def.rules)
		if err != nil {
			return nil, err
		}
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a pool to the registry. Name collisions are rejected;
// the built-in pools can never be shadowed by a pack.
func (r *Registry) Register(p *Pool) error {
	if _, exists := r.pools[p.name]; exists {
		return fmt.Errorf("pool %q is already registered", p.name)
	}
	r.pools[p.name] = p
	r.names = append(r.names, p.name)
	return nil
}

// Pool looks up a pool by name.
func (r *Registry) Pool(name string) (*Pool, bool) {
	p, ok := r.pools[name]
	return p, ok
}

// Names returns the registered pool names sorted alphabetically.
// Sorted output keeps error messages and stats listings deterministic.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	sort.Strings(out)
	return out
}

// Stats reports pool name to item count. No inputs, no side effects,
// no errors; used for diagnostics and regression guards on pool size.
func (r *Registry) Stats() map[string]int {
	stats := make(map[string]int, len(r.pools))
	for name, p := range r.pools {
		stats[name] = p.Len()
	}
	return stats
}
