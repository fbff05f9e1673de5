package store

import (
	"fmt"
	"strings"

	"github.com/fchant/daybrain/internal/model"
)

// AddProject creates a new project
func (s *Store) AddProject(name, color string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return model.Project{}, fmt.Errorf("project name must not be empty")
	}

	now := s.now()
	p := model.Project{
		ID:        s.newID(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.projects = append(s.projects, p)
	s.adapter.SaveProjects(s.projects)
	return p, nil
}

// UpdateProject renames or recolors a project
func (s *Store) UpdateProject(id, name, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Name = name
			s.projects[i].Color = color
			s.projects[i].UpdatedAt = s.now()
			s.adapter.SaveProjects(s.projects)
			return nil
		}
	}
	return fmt.Errorf("project %s not found", id)
}

// DeleteProject removes a project and nulls out ProjectID on every task and
// recurring template that referenced it. The tasks themselves survive.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("project %s not found", id)
	}
	s.projects = kept

	now := s.now()
	tasksChanged := false
	for i := range s.tasks {
		if s.tasks[i].ProjectID != nil && *s.tasks[i].ProjectID == id {
			s.tasks[i].ProjectID = nil
			s.tasks[i].UpdatedAt = now
			tasksChanged = true
		}
	}

	recurringChanged := false
	for i := range s.recurring {
		if s.recurring[i].ProjectID != nil && *s.recurring[i].ProjectID == id {
			s.recurring[i].ProjectID = nil
			recurringChanged = true
		}
	}

	s.adapter.SaveProjects(s.projects)
	if tasksChanged {
		s.persistTasks()
	}
	if recurringChanged {
		s.adapter.SaveRecurringTasks(s.recurring)
	}
	return nil
}
