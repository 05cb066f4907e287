package quest

// Selection is the result of one Pick call.
type Selection struct {
	// Item is the selected pool entry.
	Item Item

	// Repeat is true when every candidate was already in the used
	// set and the pick fell back to the full candidate list. Callers
	// that care (very long documents) can surface or log it; most
	// ignore it.
	Repeat bool
}

// Pick selects one item from the named pool.
//
// Candidates are the pool items, restricted to those sharing at least
// one tag with tagsAny when the filter is non-empty. A nil or empty
// tagsAny means no restriction. Items whose ID appears in used are
// preferred; only when the used set covers every candidate does Pick
// fall back to the full candidate list and allow a repeat. The
// fallback is deliberate soft degradation, not an error: exhausting a
// hundred-item pool inside one document only happens for very long
// documents.
//
// Pick has no side effects. Callers wanting continued non-repetition
// must add the returned ID to their own used set before the next call.
//
// Reproducibility: identical pool, used set, tag filter, and an
// identically-seeded Source yield the identical item on every call.
//
// Errors: UNKNOWN_POOL for an unregistered pool name, EMPTY_CANDIDATES
// when the tag filter matches zero items in the pool at all.
func (r *Registry) Pick(pool string, used map[string]bool, src Source, tagsAny []string) (Selection, error) {
	p, ok := r.pools[pool]
	if !ok {
		return Selection{}, NewUnknownPoolError(pool, r.Names())
	}

	tags := NormalizeTags(tagsAny)

	// Candidate set in pool order. Pool order is what makes selection
	// reproducible for a given Source.
	var candidates []Item
	if len(tags) == 0 {
		candidates = p.items
	} else {
		for _, it := range p.items {
			if it.HasAnyTag(tags) {
				candidates = append(candidates, it)
			}
		}
	}
	if len(candidates) == 0 {
		return Selection{}, NewEmptyCandidatesError(pool, tags)
	}

	var unused []Item
	for _, it := range candidates {
		if !used[it.ID] {
			unused = append(unused, it)
		}
	}

	if len(unused) > 0 {
		return Selection{Item: unused[src.Intn(len(unused))]}, nil
	}
	return Selection{Item: candidates[src.Intn(len(candidates))], Repeat: true}, nil
}
