package model

import (
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityNone Priority = ""
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

// EnergyLevel represents how much focus a task demands
type EnergyLevel string

const (
	EnergyNone   EnergyLevel = ""
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// TaskSize is a coarse effort estimate
type TaskSize string

const (
	SizeNone   TaskSize = ""
	SizeSmall  TaskSize = "small"
	SizeMedium TaskSize = "medium"
	SizeLarge  TaskSize = "large"
)

// Task represents a unit of work. Reverse references (subtasks of a parent,
// tasks depending on this one) are not stored; the store derives them from
// ParentTaskID and DependsOn so the two directions can never disagree.
type Task struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Completed        bool        `json:"completed"`
	Archived         bool        `json:"archived"`
	DueDate          *time.Time  `json:"dueDate,omitempty"` // calendar date, midnight local
	Priority         Priority    `json:"priority,omitempty"`
	EnergyLevel      EnergyLevel `json:"energyLevel,omitempty"`
	Size             TaskSize    `json:"size,omitempty"`
	EstimatedMinutes *int        `json:"estimatedMinutes,omitempty"`
	ActualMinutes    *int        `json:"actualMinutes,omitempty"`
	ParentTaskID     *string     `json:"parentTaskId,omitempty"`
	DependsOn        []string    `json:"dependsOn,omitempty"`
	ProjectID        *string     `json:"projectId,omitempty"`
	CategoryIDs      []string    `json:"categoryIds,omitempty"`
	RecurringTaskID  *string     `json:"recurringTaskId,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// DateOf truncates a timestamp to its calendar date in local time.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsOverdue returns true if the task is incomplete and past its due date
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed || t.Archived {
		return false
	}
	return t.DueDate.Before(DateOf(now))
}

// IsDueToday returns true if the task is due on the given day
func (t *Task) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return SameDay(*t.DueDate, now)
}

// HasCategory reports whether the task carries the given category id
func (t *Task) HasCategory(categoryID string) bool {
	for _, id := range t.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
