package store

import (
	"github.com/fchant/daybrain/internal/model"
)

// Overdue returns incomplete, unarchived tasks due before today
func (s *Store) Overdue() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var tasks []model.Task
	for _, t := range s.tasks {
		if t.IsOverdue(now) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// DueToday returns incomplete, unarchived tasks due today
func (s *Store) DueToday() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var tasks []model.Task
	for _, t := range s.tasks {
		if t.Completed || t.Archived {
			continue
		}
		if t.IsDueToday(now) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// DueThisWeek returns incomplete, unarchived tasks due within the next
// seven days inclusive, today included
func (s *Store) DueThisWeek() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := model.DateOf(s.now())
	end := today.AddDate(0, 0, 7)

	var tasks []model.Task
	for _, t := range s.tasks {
		if t.Completed || t.Archived || t.DueDate == nil {
			continue
		}
		if !t.DueDate.Before(today) && !t.DueDate.After(end) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
