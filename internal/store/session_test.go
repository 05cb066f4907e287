package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateSession_AndSeed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	seed, err := s.SessionSeed(ctx, "doc-1")
	if err != nil {
		t.Fatalf("SessionSeed failed: %v", err)
	}
	if seed != 42 {
		t.Errorf("seed = %d, want 42", seed)
	}
}

func TestCreateSession_DuplicateToken(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 1); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := s.CreateSession(ctx, "doc-1", 2); err == nil {
		t.Error("expected error for duplicate session token, got nil")
	}
}

func TestCreateSession_EmptyToken(t *testing.T) {
	s := openTestStore(t)
	if err := s.CreateSession(context.Background(), "", 1); err == nil {
		t.Error("expected error for empty token, got nil")
	}
}

func TestSessionSeed_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SessionSeed(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionExists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ok, err := s.SessionExists(ctx, "doc-1")
	if err != nil {
		t.Fatalf("SessionExists failed: %v", err)
	}
	if ok {
		t.Error("session should not exist yet")
	}

	if err := s.CreateSession(ctx, "doc-1", 1); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	ok, err = s.SessionExists(ctx, "doc-1")
	if err != nil {
		t.Fatalf("SessionExists failed: %v", err)
	}
	if !ok {
		t.Error("session should exist")
	}
}

func TestMarkUsed_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	for i, id := range []string{"P001", "Q014", "N002"} {
		if err := s.MarkUsed(ctx, "doc-1", id, "test", int64(i+1)); err != nil {
			t.Fatalf("MarkUsed(%s) failed: %v", id, err)
		}
	}

	used, err := s.UsedIDs(ctx, "doc-1")
	if err != nil {
		t.Fatalf("UsedIDs failed: %v", err)
	}
	if len(used) != 3 {
		t.Fatalf("len(used) = %d, want 3", len(used))
	}
	for _, id := range []string{"P001", "Q014", "N002"} {
		if !used[id] {
			t.Errorf("used[%s] = false, want true", id)
		}
	}
}

func TestMarkUsed_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// Same item recorded twice: silently ignored.
	for i := 0; i < 2; i++ {
		if err := s.MarkUsed(ctx, "doc-1", "P001", "proof", int64(i+1)); err != nil {
			t.Fatalf("MarkUsed iteration %d failed: %v", i, err)
		}
	}

	n, err := s.UsedCount(ctx, "doc-1")
	if err != nil {
		t.Fatalf("UsedCount failed: %v", err)
	}
	if n != 1 {
		t.Errorf("UsedCount = %d, want 1", n)
	}
}

func TestMarkUsed_UnknownSession(t *testing.T) {
	s := openTestStore(t)

	// Foreign key constraint rejects draws for unregistered sessions.
	err := s.MarkUsed(context.Background(), "ghost", "P001", "proof", 1)
	if err == nil {
		t.Error("expected foreign key error for unknown session, got nil")
	}
}

func TestUsedItems_OrderedBySeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	draws := []struct {
		id   string
		pool string
		seq  int64
	}{
		{"N005", "note", 3},
		{"P001", "proof", 1},
		{"Q010", "quest", 2},
	}
	for _, d := range draws {
		if err := s.MarkUsed(ctx, "doc-1", d.id, d.pool, d.seq); err != nil {
			t.Fatalf("MarkUsed(%s) failed: %v", d.id, err)
		}
	}

	items, err := s.UsedItems(ctx, "doc-1")
	if err != nil {
		t.Fatalf("UsedItems failed: %v", err)
	}
	want := []string{"P001", "Q010", "N005"}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].ItemID != id {
			t.Errorf("items[%d] = %s, want %s", i, items[i].ItemID, id)
		}
	}
}

func TestNextSeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	seq, err := s.NextSeq(ctx, "doc-1")
	if err != nil {
		t.Fatalf("NextSeq failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("NextSeq on empty session = %d, want 1", seq)
	}

	if err := s.MarkUsed(ctx, "doc-1", "P001", "proof", seq); err != nil {
		t.Fatalf("MarkUsed failed: %v", err)
	}

	seq, err = s.NextSeq(ctx, "doc-1")
	if err != nil {
		t.Fatalf("NextSeq failed: %v", err)
	}
	if seq != 2 {
		t.Errorf("NextSeq after one draw = %d, want 2", seq)
	}
}

func TestDeleteSession_Cascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateSession(ctx, "doc-1", 42); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := s.MarkUsed(ctx, "doc-1", "P001", "proof", 1); err != nil {
		t.Fatalf("MarkUsed failed: %v", err)
	}

	if err := s.DeleteSession(ctx, "doc-1"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	ok, err := s.SessionExists(ctx, "doc-1")
	if err != nil {
		t.Fatalf("SessionExists failed: %v", err)
	}
	if ok {
		t.Error("session should be deleted")
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM used_items").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("used_items count = %d after cascade delete, want 0", count)
	}
}

func TestDeleteSession_UnknownTokenNoOp(t *testing.T) {
	s := openTestStore(t)
	if err := s.DeleteSession(context.Background(), "ghost"); err != nil {
		t.Errorf("DeleteSession on unknown token should be a no-op: %v", err)
	}
}
