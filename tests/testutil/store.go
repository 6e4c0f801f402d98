package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/listoapp/listo/internal/logging"
	"github.com/listoapp/listo/internal/storage"
	"github.com/listoapp/listo/internal/store"
)

// FixedTime is the reference clock used by store tests: a mid-morning
// moment so end-of-day deadlines are unambiguous.
var FixedTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)

// NewTestStore creates a Store backed by in-memory storage, loaded and
// pinned to FixedTime. The memory storage is returned so tests can assert
// on persistence behavior.
func NewTestStore(t *testing.T) (*store.Store, *storage.MemoryStorage) {
	t.Helper()

	mem := storage.NewMemoryStorage()
	s := store.New(mem, logging.Nop())
	s.Load(context.Background())
	s.SetNow(func() time.Time { return FixedTime })
	return s, mem
}

// NewSQLiteTestStorage creates an in-memory SQLite storage with all
// migrations applied. It automatically closes when the test completes.
func NewSQLiteTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	st, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("closing test storage: %v", err)
		}
	})

	return st
}
