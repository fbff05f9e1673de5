package store

import (
	"sync"
	"time"

	"github.com/fchant/daybrain/internal/model"
	"github.com/fchant/daybrain/internal/storage"
	"github.com/google/uuid"
)

// Store is the sole writer of every collection. It mirrors the persisted
// state in memory, mutates it through a fixed operation set, and writes the
// whole affected collection back after each mutation. Reverse task
// references are never stored; reindex rebuilds them after every task
// mutation so Subtasks and DependedOnBy cannot drift from the canonical
// ParentTaskID / DependsOn fields.
type Store struct {
	mu      sync.Mutex
	adapter *storage.Adapter

	now   func() time.Time
	newID func() string

	tasks      []model.Task
	projects   []model.Project
	categories []model.Category
	plans      []model.DailyPlan
	recurring  []model.RecurringTask
	journal    []model.JournalEntry
	schedule   *model.WorkSchedule
	lastReview *time.Time

	children   map[string][]string // parent id -> child ids
	dependents map[string][]string // task id -> ids of tasks depending on it

	undo []deletion
}

// New loads every collection from the adapter into memory
func New(adapter *storage.Adapter) *Store {
	s := &Store{
		adapter: adapter,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}

	s.tasks = adapter.Tasks()
	s.projects = adapter.Projects()
	s.categories = adapter.Categories()
	s.plans = adapter.DailyPlans()
	s.recurring = adapter.RecurringTasks()
	s.journal = adapter.JournalEntries()
	s.schedule = adapter.WorkSchedule()
	s.lastReview = adapter.LastWeeklyReview()
	s.reindex()

	return s
}

// reindex rebuilds the derived child and dependent indexes. Must be called
// with the lock held after any change to the task collection.
func (s *Store) reindex() {
	children := make(map[string][]string)
	dependents := make(map[string][]string)

	for _, t := range s.tasks {
		if t.ParentTaskID != nil {
			children[*t.ParentTaskID] = append(children[*t.ParentTaskID], t.ID)
		}
		for _, dep := range t.DependsOn {
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	s.children = children
	s.dependents = dependents
}

// persistTasks writes the task collection and refreshes the indexes
func (s *Store) persistTasks() {
	s.adapter.SaveTasks(s.tasks)
	s.reindex()
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Tasks returns a copy of the task collection
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

// Task returns a single task by id
func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Subtasks returns the tasks whose ParentTaskID is id, in collection order
func (s *Store) Subtasks(id string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasksByID(s.children[id])
}

// DependedOnBy returns the tasks that depend on id
func (s *Store) DependedOnBy(id string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasksByID(s.dependents[id])
}

func (s *Store) tasksByID(ids []string) []model.Task {
	var tasks []model.Task
	for _, id := range ids {
		if i := s.taskIndex(id); i >= 0 {
			tasks = append(tasks, s.tasks[i])
		}
	}
	return tasks
}

// Projects returns a copy of the project collection
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Project(nil), s.projects...)
}

// Categories returns a copy of the category collection
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Category(nil), s.categories...)
}

// RecurringTasks returns a copy of the recurring template collection
func (s *Store) RecurringTasks() []model.RecurringTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.RecurringTask(nil), s.recurring...)
}

// LastWeeklyReview returns when the weekly review was last completed
func (s *Store) LastWeeklyReview() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReview
}

// SetLastWeeklyReview records a completed weekly review
func (s *Store) SetLastWeeklyReview(when time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReview = &when
	s.adapter.SaveLastWeeklyReview(when)
}
