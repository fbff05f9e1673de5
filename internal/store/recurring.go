package store

import (
	"fmt"
	"strings"

	"github.com/fchant/daybrain/internal/model"
)

// AddRecurringTask records a new template. NextDue defaults to today when
// the caller leaves it zero.
func (s *Store) AddRecurringTask(rt model.RecurringTask) (model.RecurringTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(rt.Title) == "" {
		return model.RecurringTask{}, fmt.Errorf("recurring task title must not be empty")
	}

	rt.ID = s.newID()
	rt.CreatedAt = s.now()
	rt.Active = true
	rt.LastGenerated = nil
	if rt.NextDue.IsZero() {
		rt.NextDue = model.DateOf(s.now())
	} else {
		rt.NextDue = model.DateOf(rt.NextDue)
	}

	s.recurring = append(s.recurring, rt)
	s.adapter.SaveRecurringTasks(s.recurring)
	return rt, nil
}

// UpdateRecurringTask replaces the template with a matching id
func (s *Store) UpdateRecurringTask(rt model.RecurringTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(rt.Title) == "" {
		return fmt.Errorf("recurring task title must not be empty")
	}

	for i := range s.recurring {
		if s.recurring[i].ID == rt.ID {
			rt.CreatedAt = s.recurring[i].CreatedAt
			s.recurring[i] = rt
			s.adapter.SaveRecurringTasks(s.recurring)
			return nil
		}
	}
	return fmt.Errorf("recurring task %s not found", rt.ID)
}

// DeleteRecurringTask removes a template. Tasks already generated from it
// keep their provenance link.
func (s *Store) DeleteRecurringTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recurring {
		if s.recurring[i].ID == id {
			s.recurring = append(s.recurring[:i:i], s.recurring[i+1:]...)
			s.adapter.SaveRecurringTasks(s.recurring)
			return nil
		}
	}
	return fmt.Errorf("recurring task %s not found", id)
}

// GenerateTask constructs a concrete task from a template and its current
// NextDue. It neither persists the task nor advances the template; that is
// CheckRecurring's job.
func (s *Store) GenerateTask(rt model.RecurringTask) model.TaskDraft {
	due := model.DateOf(rt.NextDue)
	recurringID := rt.ID
	return model.TaskDraft{
		Title:           rt.Title,
		Description:     rt.Description,
		Priority:        rt.Priority,
		ProjectID:       rt.ProjectID,
		CategoryIDs:     append([]string(nil), rt.CategoryIDs...),
		DueDate:         &due,
		RecurringTaskID: &recurringID,
	}
}

// CheckRecurring generates a task for every active template whose NextDue
// has arrived, then advances NextDue one pattern step and stamps
// LastGenerated. The stamp guarantees at most one generation per template
// per calendar day, so running the check twice is harmless.
func (s *Store) CheckRecurring() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := model.DateOf(now)

	var generated []model.Task
	changed := false
	for i := range s.recurring {
		rt := &s.recurring[i]
		if !rt.Active {
			continue
		}
		if rt.NextDue.After(today) {
			continue
		}
		if rt.LastGenerated != nil && model.SameDay(*rt.LastGenerated, now) {
			continue
		}

		task, err := s.addTask(s.GenerateTask(*rt))
		if err != nil {
			continue
		}
		generated = append(generated, task)

		rt.NextDue = rt.Pattern.NextAfter(rt.NextDue)
		stamp := now
		rt.LastGenerated = &stamp
		if rt.Pattern.Expired(rt.NextDue) {
			rt.Active = false
		}
		changed = true
	}

	if changed {
		s.adapter.SaveRecurringTasks(s.recurring)
	}
	return generated
}
