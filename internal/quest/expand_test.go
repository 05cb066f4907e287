package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_BuiltinPools(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"note", "proof", "quest"}, r.Names())

	for _, name := range []string{"proof", "quest", "note"} {
		_, ok := r.Pool(name)
		assert.True(t, ok, "pool %q should be registered", name)
	}
}

func TestNewRegistry_MinimumPoolSizes(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	stats := r.Stats()
	assert.GreaterOrEqual(t, stats["proof"], MinProofItems, "proof pool shrank below documented minimum")
	assert.GreaterOrEqual(t, stats["quest"], MinQuestItems, "quest pool shrank below documented minimum")
	assert.GreaterOrEqual(t, stats["note"], MinNoteItems, "note pool shrank below documented minimum")
}

func TestNewRegistry_UniqueIDsPerPool(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, name := range r.Names() {
		p, ok := r.Pool(name)
		require.True(t, ok)

		seen := make(map[string]bool, p.Len())
		for _, it := range p.Items() {
			require.False(t, seen[it.ID], "pool %q: duplicate ID %s", name, it.ID)
			seen[it.ID] = true
		}
	}
}

func TestNewRegistry_AllIDsWellFormed(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, name := range r.Names() {
		p, _ := r.Pool(name)
		for _, it := range p.Items() {
			assert.True(t, ValidID(it.ID), "pool %q: malformed ID %q", name, it.ID)
			assert.Equal(t, p.Prefix(), it.ID[:1], "pool %q: ID %q has wrong prefix", name, it.ID)
			assert.NotEmpty(t, it.Text, "pool %q: item %s has empty text", name, it.ID)
		}
	}
}

func TestNewRegistry_Deterministic(t *testing.T) {
	// Two fresh registries must hold byte-identical item sequences.
	r1, err := NewRegistry()
	require.NoError(t, err)
	r2, err := NewRegistry()
	require.NoError(t, err)

	for _, name := range r1.Names() {
		p1, _ := r1.Pool(name)
		p2, ok := r2.Pool(name)
		require.True(t, ok)
		assert.Equal(t, p1.Items(), p2.Items(), "pool %q differs between builds", name)
	}
}

func TestExpand_ContinuesFromSeedMaximum(t *testing.T) {
	seeds := []Item{
		{ID: "X001", Text: "one"},
		{ID: "X007", Text: "seven"}, // gap: X002-X006 retired
	}
	rules := []ExpandRule{
		{Template: "made of %s", Values: []string{"wood", "stone"}},
	}

	items, err := expand("X", seeds, rules)
	require.NoError(t, err)
	require.Len(t, items, 4)

	// Generated IDs continue above the maximum, never refilling gaps.
	assert.Equal(t, "X008", items[2].ID)
	assert.Equal(t, "X009", items[3].ID)
	assert.Equal(t, "made of wood", items[2].Text)
	assert.Equal(t, "made of stone", items[3].Text)
}

func TestExpand_NormalizesTags(t *testing.T) {
	seeds := []Item{{ID: "X001", Text: "t", Tags: []string{"  Calm ", "STARS"}}}
	rules := []ExpandRule{
		{Template: "%s", Values: []string{"v"}, Tags: []string{"Logic"}},
	}

	items, err := expand("X", seeds, rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"calm", "stars"}, items[0].Tags)
	assert.Equal(t, []string{"logic"}, items[1].Tags)
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		seeds []Item
		rules []ExpandRule
	}{
		{
			name:  "malformed seed ID",
			seeds: []Item{{ID: "X1", Text: "t"}},
		},
		{
			name:  "seed prefix mismatch",
			seeds: []Item{{ID: "Y001", Text: "t"}},
		},
		{
			name: "duplicate seed ID",
			seeds: []Item{
				{ID: "X001", Text: "a"},
				{ID: "X001", Text: "b"},
			},
		},
		{
			name:  "empty seed text",
			seeds: []Item{{ID: "X001", Text: ""}},
		},
		{
			name:  "template without placeholder",
			seeds: []Item{{ID: "X001", Text: "t"}},
			rules: []ExpandRule{{Template: "no placeholder", Values: []string{"v"}}},
		},
		{
			name:  "template with two placeholders",
			seeds: []Item{{ID: "X001", Text: "t"}},
			rules: []ExpandRule{{Template: "%s and %s", Values: []string{"v"}}},
		},
		{
			name:  "rule without values",
			seeds: []Item{{ID: "X001", Text: "t"}},
			rules: []ExpandRule{{Template: "%s"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expand("X", tt.seeds, tt.rules)
			assert.Error(t, err)
		})
	}
}

func TestNewPool_RejectsBadPrefix(t *testing.T) {
	for _, prefix := range []string{"", "p", "PP", "1"} {
		_, err := NewPool("test", prefix, nil, nil)
		assert.Error(t, err, "prefix %q should be rejected", prefix)
	}
}

func TestRegistry_RejectsDuplicateName(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	p, err := NewPool("proof", "X", []Item{{ID: "X001", Text: "t"}}, nil)
	require.NoError(t, err)

	err = r.Register(p)
	assert.Error(t, err, "built-in pool name must not be shadowed")
}
