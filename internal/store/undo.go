package store

import (
	"time"

	"github.com/fchant/daybrain/internal/model"
)

// undoWindow is how long a deleted subtree can be brought back
const undoWindow = 5 * time.Second

// deletion is one undoable delete: the removed subtree, the dependency
// edges scrubbed from survivors, and when it happened
type deletion struct {
	tasks      []model.Task
	prunedDeps map[string][]string // surviving task id -> dep ids removed
	deletedAt  time.Time
}

// UndoDelete restores the most recent deletion still inside the undo
// window, dependency edges included. Returns false when there is nothing
// to restore.
func (s *Store) UndoDelete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepUndo()
	if len(s.undo) == 0 {
		return false
	}

	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	s.tasks = append(s.tasks, last.tasks...)
	for taskID, deps := range last.prunedDeps {
		i := s.taskIndex(taskID)
		if i < 0 {
			continue
		}
		for _, dep := range deps {
			if !containsID(s.tasks[i].DependsOn, dep) {
				s.tasks[i].DependsOn = append(s.tasks[i].DependsOn, dep)
			}
		}
	}
	s.persistTasks()
	return true
}

func containsID(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

// SweepUndo drops expired entries; wired to a periodic scheduler job
func (s *Store) SweepUndo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepUndo()
}

func (s *Store) sweepUndo() {
	cutoff := s.now().Add(-undoWindow)
	kept := s.undo[:0]
	for _, d := range s.undo {
		if d.deletedAt.After(cutoff) {
			kept = append(kept, d)
		}
	}
	s.undo = kept
}
