// Package testutil provides shared helpers for tests that need a
// built registry or a temporary session store.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/questdeck/questdeck/internal/quest"
	"github.com/questdeck/questdeck/internal/store"
)

// Registry builds the built-in pool registry, failing the test on error.
func Registry(t *testing.T) *quest.Registry {
	t.Helper()
	reg, err := quest.NewRegistry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

// OpenStore opens a session store on a fresh temporary database and
// closes it when the test finishes.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return st
}
