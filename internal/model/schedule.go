package model

import (
	"time"
)

// WorkShift is a recurring block of working hours on one weekday
type WorkShift struct {
	Day   time.Weekday `json:"day"`
	Start string       `json:"start"` // HH:MM
	End   string       `json:"end"`   // HH:MM
}

// WorkSchedule holds the user's weekly working hours
type WorkSchedule struct {
	Shifts []WorkShift `json:"shifts"`
}

// ShiftsOn returns the shifts scheduled for the given weekday
func (s *WorkSchedule) ShiftsOn(day time.Weekday) []WorkShift {
	var shifts []WorkShift
	for _, shift := range s.Shifts {
		if shift.Day == day {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}
