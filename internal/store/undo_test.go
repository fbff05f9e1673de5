package store

import (
	"testing"
	"time"
)

func TestUndoDeleteWithinWindow(t *testing.T) {
	s, clock := newTestStore(t)

	root, _ := s.AddTask(modelDraft("Root"))
	if _, err := s.AddTask(childDraft("Child", root.ID)); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.DeleteTask(root.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if got := s.Tasks(); len(got) != 0 {
		t.Fatalf("tasks after delete = %+v", got)
	}

	clock.Advance(3 * time.Second)
	if !s.UndoDelete() {
		t.Fatal("UndoDelete inside the window returned false")
	}

	restored := s.Tasks()
	if len(restored) != 2 {
		t.Fatalf("restored %d tasks, want 2 (the whole subtree)", len(restored))
	}
	subs := s.Subtasks(root.ID)
	if len(subs) != 1 || subs[0].Title != "Child" {
		t.Fatalf("subtree structure lost on restore: %+v", subs)
	}
}

func TestUndoDeleteRestoresPrunedDependencies(t *testing.T) {
	s, _ := newTestStore(t)

	dep, _ := s.AddTask(modelDraft("Dependency"))
	waiting, _ := s.AddTask(modelDraft("Waiting"))
	if err := s.AddDependency(waiting.ID, dep.ID); err != nil {
		t.Fatalf("AddDependency failed: %v", err)
	}

	if err := s.DeleteTask(dep.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if got, _ := s.Task(waiting.ID); len(got.DependsOn) != 0 {
		t.Fatalf("DependsOn not pruned on delete: %+v", got.DependsOn)
	}

	if !s.UndoDelete() {
		t.Fatal("UndoDelete returned false")
	}
	got, _ := s.Task(waiting.ID)
	if len(got.DependsOn) != 1 || got.DependsOn[0] != dep.ID {
		t.Fatalf("DependsOn after undo = %+v, want the restored edge", got.DependsOn)
	}
	deps := s.DependedOnBy(dep.ID)
	if len(deps) != 1 || deps[0].ID != waiting.ID {
		t.Fatalf("DependedOnBy after undo = %+v", deps)
	}
	if s.CanCompleteTask(waiting.ID) {
		t.Fatal("restored dependency not blocking completion")
	}
}

func TestUndoDeleteExpiresAfterWindow(t *testing.T) {
	s, clock := newTestStore(t)

	task, _ := s.AddTask(modelDraft("Gone for good"))
	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	clock.Advance(6 * time.Second)
	if s.UndoDelete() {
		t.Fatal("UndoDelete restored an expired deletion")
	}
	if got := s.Tasks(); len(got) != 0 {
		t.Fatalf("tasks = %+v, want none", got)
	}
}

func TestSweepUndoDropsOnlyExpiredEntries(t *testing.T) {
	s, clock := newTestStore(t)

	old, _ := s.AddTask(modelDraft("Old"))
	fresh, _ := s.AddTask(modelDraft("Fresh"))

	if err := s.DeleteTask(old.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	clock.Advance(4 * time.Second)
	if err := s.DeleteTask(fresh.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	clock.Advance(2 * time.Second)

	// Old entry is 6s gone, fresh one 2s
	s.SweepUndo()

	if !s.UndoDelete() {
		t.Fatal("fresh deletion not restorable after sweep")
	}
	got := s.Tasks()
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Fatalf("restored = %+v, want only the fresh task", got)
	}
	if s.UndoDelete() {
		t.Fatal("expired deletion restorable after sweep")
	}
}

func TestUndoDeleteEmptyBuffer(t *testing.T) {
	s, _ := newTestStore(t)
	if s.UndoDelete() {
		t.Fatal("UndoDelete on empty buffer returned true")
	}
}
