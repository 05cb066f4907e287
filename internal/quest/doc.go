// Package quest implements the questdeck content pools and selection logic.
//
// The package owns three built-in pools of tagged text items — "proof"
// (completion-proof prompts), "quest" (mini-challenges), and "note"
// (encouraging notes) — and exposes a selection operation that picks one
// item, preferring items not yet used in the caller's session.
//
// ARCHITECTURE:
//
// Immutable Pools:
// Pools are constructed exactly once, by deterministically expanding a
// hand-curated seed list through a fixed list of template rules. After
// construction they are never mutated, so they may be read concurrently
// by any number of callers without locking.
//
// Caller-Owned Session State:
// The only mutable state in the selection contract is the used-id set,
// and it is owned and threaded explicitly by each caller. The package
// holds no session state of its own; Pick is a pure function of its
// inputs.
//
// CRITICAL PATTERNS:
//
// Append-Only IDs:
// Item IDs are stable identifiers of the form <prefix><3+ digit number>
// (P001, Q084, N014). Once published an ID is never reassigned or
// reused, because generated documents and saved sessions reference IDs
// directly. Expansion continues numbering from the current maximum and
// never fills retired gaps.
//
// Deterministic Construction, Seeded Selection:
// Construction involves no randomness — the same seeds and rules always
// produce byte-identical pools. Randomness lives only in selection, and
// only through a caller-supplied Source, so the same seed reproduces the
// same document.
package quest
