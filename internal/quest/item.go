package quest

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Item is a single pool entry: a stable ID, the literal text to render,
// and a set of short lowercase tags for category filtering.
//
// Items are values and are never mutated after pool construction.
// Downstream code embeds Text directly on a generated page and may
// persist ID into saved progress, so IDs must stay stable forever.
type Item struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

// HasTag reports whether the item carries the given (normalized) tag.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the item shares at least one tag with the
// given set. An empty set matches nothing; callers treat an empty
// filter as "no restriction" before reaching this check.
func (it Item) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if it.HasTag(t) {
			return true
		}
	}
	return false
}

// idPattern matches pool item IDs: one uppercase prefix letter followed
// by a zero-padded number of at least three digits.
var idPattern = regexp.MustCompile(`^[A-Z][0-9]{3,}$`)

// ValidID reports whether id has the <prefix><3+ digits> form.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// idNumber extracts the numeric part of a valid item ID.
// Returns false for IDs that don't match the expected form.
func idNumber(id string) (int, bool) {
	if !ValidID(id) {
		return 0, false
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NormalizeTag canonicalizes a tag: NFC normalization, lowercase,
// surrounding whitespace stripped. Tags are compared byte-wise after
// normalization, so every tag entering the system passes through here.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(tag)))
}

// NormalizeTags canonicalizes a tag list, dropping entries that
// normalize to the empty string. Returns nil for an empty result so
// "no filter" stays representable as nil.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if n := NormalizeTag(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
