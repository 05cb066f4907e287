package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session token does not exist.
var ErrSessionNotFound = errors.New("session not found")

// UsedItem is one recorded draw within a session.
type UsedItem struct {
	ItemID string
	Pool   string
	Seq    int64
}

// CreateSession inserts a session record. Creating a session that
// already exists is an error: a token identifies exactly one document
// run, and silently reusing one would mix used-id sets.
func (s *Store) CreateSession(ctx context.Context, token string, seed int64) error {
	if token == "" {
		return fmt.Errorf("create session: token is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, seed) VALUES (?, ?)
	`, token, seed)
	if err != nil {
		return fmt.Errorf("create session %s: %w", token, err)
	}
	return nil
}

// SessionSeed returns the seed the session was created with.
// Resuming a run with its original seed is what keeps "same seed =
// same document" true across CLI invocations.
func (s *Store) SessionSeed(ctx context.Context, token string) (int64, error) {
	var seed int64
	err := s.db.QueryRowContext(ctx,
		"SELECT seed FROM sessions WHERE token = ?", token,
	).Scan(&seed)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("session %s: %w", token, ErrSessionNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("session seed %s: %w", token, err)
	}
	return seed, nil
}

// SessionExists reports whether the token is registered.
func (s *Store) SessionExists(ctx context.Context, token string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM sessions WHERE token = ?", token,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session exists %s: %w", token, err)
	}
	return true, nil
}

// MarkUsed records a consumed item ID for the session.
// Uses ON CONFLICT DO NOTHING for idempotency - replaying a draw that
// was already recorded is silently ignored.
//
// Note: The session referenced by token must exist (foreign key
// constraint).
func (s *Store) MarkUsed(ctx context.Context, token, itemID, pool string, seq int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO used_items (session_token, item_id, pool, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_token, item_id) DO NOTHING
	`, token, itemID, pool, seq)
	if err != nil {
		return fmt.Errorf("mark used %s/%s: %w", token, itemID, err)
	}
	return nil
}

// UsedIDs returns the session's consumed item IDs as a set, in the
// shape quest.Registry.Pick consumes directly.
func (s *Store) UsedIDs(ctx context.Context, token string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id FROM used_items WHERE session_token = ?", token,
	)
	if err != nil {
		return nil, fmt.Errorf("used ids %s: %w", token, err)
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("used ids %s: %w", token, err)
		}
		used[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("used ids %s: %w", token, err)
	}
	return used, nil
}

// UsedItems returns the session's draws ordered by sequence number,
// for `questdeck session show`.
func (s *Store) UsedItems(ctx context.Context, token string) ([]UsedItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, pool, seq FROM used_items
		WHERE session_token = ?
		ORDER BY seq, item_id
	`, token)
	if err != nil {
		return nil, fmt.Errorf("used items %s: %w", token, err)
	}
	defer rows.Close()

	var items []UsedItem
	for rows.Next() {
		var it UsedItem
		if err := rows.Scan(&it.ItemID, &it.Pool, &it.Seq); err != nil {
			return nil, fmt.Errorf("used items %s: %w", token, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("used items %s: %w", token, err)
	}
	return items, nil
}

// UsedCount returns how many items the session has consumed.
func (s *Store) UsedCount(ctx context.Context, token string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM used_items WHERE session_token = ?", token,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("used count %s: %w", token, err)
	}
	return n, nil
}

// NextSeq returns the next draw sequence number for the session.
// Sequence numbers order draws within a session; they start at 1.
func (s *Store) NextSeq(ctx context.Context, token string) (int64, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(seq) FROM used_items WHERE session_token = ?", token,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("next seq %s: %w", token, err)
	}
	return max.Int64 + 1, nil
}

// DeleteSession removes a session and (via cascade) its used items.
// Deleting an unknown token is a no-op.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE token = ?", token,
	)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", token, err)
	}
	return nil
}
