package model

import (
	"time"
)

// RecurrenceType enumerates the supported repeat cadences
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
	RecurCustom  RecurrenceType = "custom" // every Interval days
)

// RecurrencePattern describes when a recurring template fires
type RecurrencePattern struct {
	Type       RecurrenceType `json:"type"`
	Interval   int            `json:"interval"`
	DaysOfWeek []time.Weekday `json:"daysOfWeek,omitempty"`
	DayOfMonth int            `json:"dayOfMonth,omitempty"`
	EndDate    *time.Time     `json:"endDate,omitempty"`
}

// RecurringTask is a template that periodically generates concrete tasks
type RecurringTask struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Priority      Priority          `json:"priority,omitempty"`
	ProjectID     *string           `json:"projectId,omitempty"`
	CategoryIDs   []string          `json:"categoryIds,omitempty"`
	Pattern       RecurrencePattern `json:"pattern"`
	NextDue       time.Time         `json:"nextDue"`
	LastGenerated *time.Time        `json:"lastGenerated,omitempty"`
	Active        bool              `json:"active"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// NextAfter advances a due date by one pattern step.
func (p RecurrencePattern) NextAfter(due time.Time) time.Time {
	interval := p.Interval
	if interval < 1 {
		interval = 1
	}

	switch p.Type {
	case RecurWeekly:
		if len(p.DaysOfWeek) > 0 {
			return nextMatchingWeekday(due, p.DaysOfWeek, interval)
		}
		return due.AddDate(0, 0, 7*interval)
	case RecurMonthly:
		// Advance from the first of the month so AddDate cannot normalize
		// Jan 31 into March, then clamp the target day to the month length.
		anchor := time.Date(due.Year(), due.Month(), 1, 0, 0, 0, 0, due.Location())
		next := anchor.AddDate(0, interval, 0)
		day := due.Day()
		if p.DayOfMonth > 0 {
			day = p.DayOfMonth
		}
		if max := daysInMonth(next.Month(), next.Year()); day > max {
			day = max
		}
		return time.Date(next.Year(), next.Month(), day, 0, 0, 0, 0, next.Location())
	case RecurYearly:
		return due.AddDate(interval, 0, 0)
	case RecurCustom:
		return due.AddDate(0, 0, interval)
	default: // daily
		return due.AddDate(0, 0, interval)
	}
}

// nextMatchingWeekday walks forward day by day to the next allowed weekday.
// When the step wraps past the end of the week it skips interval-1 weeks.
func nextMatchingWeekday(due time.Time, days []time.Weekday, interval int) time.Time {
	allowed := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		allowed[d] = true
	}

	next := due.AddDate(0, 0, 1)
	for i := 0; i < 7; i++ {
		if allowed[next.Weekday()] {
			if interval > 1 && next.Weekday() <= due.Weekday() {
				next = next.AddDate(0, 0, 7*(interval-1))
			}
			return next
		}
		next = next.AddDate(0, 0, 1)
	}
	return due.AddDate(0, 0, 7*interval)
}

func daysInMonth(month time.Month, year int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// Expired reports whether the pattern has run past its end date.
func (p RecurrencePattern) Expired(next time.Time) bool {
	return p.EndDate != nil && next.After(*p.EndDate)
}
