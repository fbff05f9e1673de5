package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fchant/daybrain/internal/storage"
)

// testClock is a settable clock for exercising time-dependent behavior
// (undo window, due-date queries, recurring generation) without sleeping.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()

	kv, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	clock := &testClock{now: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)}
	s := New(storage.NewAdapter(kv))
	s.now = clock.Now
	return s, clock
}

func TestStoreLoadsPersistedState(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	adapter := storage.NewAdapter(kv)

	s := New(adapter)
	parent, err := s.AddTask(modelDraft("Parent"))
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if _, err := s.AddTask(childDraft("Child", parent.ID)); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	kv.Close()

	// A second store over the same file sees everything, indexes included
	kv, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer kv.Close()

	reloaded := New(storage.NewAdapter(kv))
	if got := reloaded.Tasks(); len(got) != 2 {
		t.Fatalf("reloaded store has %d tasks, want 2", len(got))
	}
	subs := reloaded.Subtasks(parent.ID)
	if len(subs) != 1 || subs[0].Title != "Child" {
		t.Fatalf("Subtasks after reload = %+v", subs)
	}
}
