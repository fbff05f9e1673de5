package model

import (
	"fmt"
	"strings"
	"time"
)

// TaskDraft carries the caller-supplied fields for a new task. Everything is
// optional except the title; the store fills in identity and timestamps.
type TaskDraft struct {
	Title            string
	Description      string
	DueDate          *time.Time
	Priority         Priority
	EnergyLevel      EnergyLevel
	Size             TaskSize
	EstimatedMinutes *int
	ParentTaskID     *string
	DependsOn        []string
	ProjectID        *string
	CategoryIDs      []string
	RecurringTaskID  *string
}

// Validate checks the draft before it is materialized into a Task.
func (d *TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("task title must not be empty")
	}
	if d.EstimatedMinutes != nil && *d.EstimatedMinutes < 0 {
		return fmt.Errorf("estimated minutes must not be negative")
	}
	return nil
}

// Materialize builds a fully-populated Task from the draft. The id and clock
// come from the caller so the store stays the single source of both.
func (d *TaskDraft) Materialize(id string, now time.Time) Task {
	t := Task{
		ID:               id,
		Title:            strings.TrimSpace(d.Title),
		Description:      d.Description,
		Priority:         d.Priority,
		EnergyLevel:      d.EnergyLevel,
		Size:             d.Size,
		EstimatedMinutes: d.EstimatedMinutes,
		ParentTaskID:     d.ParentTaskID,
		ProjectID:        d.ProjectID,
		RecurringTaskID:  d.RecurringTaskID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if d.DueDate != nil {
		due := DateOf(*d.DueDate)
		t.DueDate = &due
	}
	if len(d.DependsOn) > 0 {
		t.DependsOn = append([]string(nil), d.DependsOn...)
	}
	if len(d.CategoryIDs) > 0 {
		t.CategoryIDs = append([]string(nil), d.CategoryIDs...)
	}
	return t
}
