package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"P001", true},
		{"Q084", true},
		{"N014", true},
		{"X1234", true}, // 4+ digits allowed as pools grow
		{"P01", false},  // too few digits
		{"p001", false}, // lowercase prefix
		{"001", false},  // no prefix
		{"PX01", false}, // non-digit after prefix
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidID(tt.id), "ValidID(%q)", tt.id)
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "calm", NormalizeTag("  Calm "))
	assert.Equal(t, "stars", NormalizeTag("STARS"))
	assert.Equal(t, "", NormalizeTag("   "))

	// Decomposed and precomposed forms normalize to the same bytes.
	assert.Equal(t, NormalizeTag("café"), NormalizeTag("café"))
}

func TestNormalizeTags_DropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeTags([]string{"A", "  ", "b"}))
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{"", "  "}))
}

func TestItem_HasAnyTag(t *testing.T) {
	it := Item{ID: "N001", Text: "t", Tags: []string{"calm", "wisdom"}}

	assert.True(t, it.HasAnyTag([]string{"calm"}))
	assert.True(t, it.HasAnyTag([]string{"stars", "wisdom"}))
	assert.False(t, it.HasAnyTag([]string{"stars"}))
	assert.False(t, it.HasAnyTag(nil))

	untagged := Item{ID: "N002", Text: "t"}
	assert.False(t, untagged.HasAnyTag([]string{"calm"}))
}
