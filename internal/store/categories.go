package store

import (
	"fmt"
	"strings"

	"github.com/fchant/daybrain/internal/model"
)

// AddCategory creates a new category
func (s *Store) AddCategory(name, color string) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return model.Category{}, fmt.Errorf("category name must not be empty")
	}

	c := model.Category{
		ID:        s.newID(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: s.now(),
	}
	s.categories = append(s.categories, c)
	s.adapter.SaveCategories(s.categories)
	return c, nil
}

// UpdateCategory renames or recolors a category
func (s *Store) UpdateCategory(id, name, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			s.categories[i].Color = color
			s.adapter.SaveCategories(s.categories)
			return nil
		}
	}
	return fmt.Errorf("category %s not found", id)
}

// DeleteCategory removes a category and strips its id from every task and
// recurring template that carried it
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("category %s not found", id)
	}
	s.categories = kept

	drop := map[string]bool{id: true}
	now := s.now()
	tasksChanged := false
	for i := range s.tasks {
		if s.tasks[i].HasCategory(id) {
			s.tasks[i].CategoryIDs = filterIDs(s.tasks[i].CategoryIDs, drop)
			s.tasks[i].UpdatedAt = now
			tasksChanged = true
		}
	}

	recurringChanged := false
	for i := range s.recurring {
		filtered := filterIDs(s.recurring[i].CategoryIDs, drop)
		if len(filtered) != len(s.recurring[i].CategoryIDs) {
			s.recurring[i].CategoryIDs = filtered
			recurringChanged = true
		}
	}

	s.adapter.SaveCategories(s.categories)
	if tasksChanged {
		s.persistTasks()
	}
	if recurringChanged {
		s.adapter.SaveRecurringTasks(s.recurring)
	}
	return nil
}
