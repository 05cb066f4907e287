// Package store provides durable session state for questdeck.
//
// The quest package itself is pure: selection takes a caller-owned
// used-id set and never persists anything. This package is the
// caller-side facility that makes used-id sets survive across CLI
// invocations — one session per generated document, each recording the
// item IDs it has consumed so a resumed run keeps its non-repetition
// guarantee.
//
// Uses SQLite with WAL mode for concurrent read access. Writes are
// idempotent (ON CONFLICT DO NOTHING), so replaying a draw never
// corrupts a session.
package store
