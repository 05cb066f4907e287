package quest

import (
	"fmt"
	"strings"
)

// ExpandRule generates pool items by substituting each value into a
// template. Rules are applied in declaration order and values in list
// order, so expansion output is a pure function of the rule list.
type ExpandRule struct {
	// Template is the item text with exactly one %s placeholder.
	Template string

	// Values are substituted into the template, one item per value,
	// in list order.
	Values []string

	// Tags are attached to every item the rule generates. Must
	// already be normalized (lowercase).
	Tags []string
}

// validate checks rule shape before expansion runs.
func (r ExpandRule) validate() error {
	if strings.Count(r.Template, "%s") != 1 {
		return fmt.Errorf("template %q must contain exactly one %%s placeholder", r.Template)
	}
	if len(r.Values) == 0 {
		return fmt.Errorf("template %q has no values", r.Template)
	}
	return nil
}

// expand grows the seed list into the full pool item sequence.
//
// Seeds keep their hand-authored IDs. Generated items are numbered
// from the current maximum seed ID upward, so adding a seed later
// shifts generated IDs but never reuses a retired number — the
// append-only ID guarantee holds as long as published pools only ever
// append seeds and rules.
//
// Returns an error on malformed seed IDs, seed IDs that don't match
// the pool prefix, duplicate IDs, or malformed rules. Expansion itself
// cannot produce a duplicate: it allocates strictly increasing numbers
// above the seed maximum.
func expand(prefix string, seeds []Item, rules []ExpandRule) ([]Item, error) {
	items := make([]Item, 0, len(seeds))
	seen := make(map[string]bool, len(seeds))
	maxNum := 0

	for i, s := range seeds {
		n, ok := idNumber(s.ID)
		if !ok {
			return nil, fmt.Errorf("seed[%d]: invalid item ID %q", i, s.ID)
		}
		if !strings.HasPrefix(s.ID, prefix) {
			return nil, fmt.Errorf("seed[%d]: ID %q does not match pool prefix %q", i, s.ID, prefix)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("seed[%d]: duplicate item ID %q", i, s.ID)
		}
		if s.Text == "" {
			return nil, fmt.Errorf("seed[%d]: empty text", i)
		}
		seen[s.ID] = true
		if n > maxNum {
			maxNum = n
		}
		s.Tags = NormalizeTags(s.Tags)
		items = append(items, s)
	}

	next := maxNum + 1
	for i, rule := range rules {
		if err := rule.validate(); err != nil {
			return nil, fmt.Errorf("rule[%d]: %w", i, err)
		}
		tags := NormalizeTags(rule.Tags)
		for _, v := range rule.Values {
			id := fmt.Sprintf("%s%03d", prefix, next)
			next++
			items = append(items, Item{
				ID:   id,
				Text: fmt.Sprintf(rule.Template, v),
				Tags: tags,
			})
		}
	}

	return items, nil
}
