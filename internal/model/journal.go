package model

import (
	"time"
)

// JournalSection identifies which part of the weekly review an entry belongs to
type JournalSection string

const (
	SectionReflect   JournalSection = "reflect"
	SectionOverdue   JournalSection = "overdue"
	SectionUpcoming  JournalSection = "upcoming"
	SectionProjects  JournalSection = "projects"
	SectionLifeAreas JournalSection = "life-areas"
)

// Mood is a coarse self-report attached to a journal entry
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodLow     Mood = "low"
	MoodRough   Mood = "rough"
)

// JournalEntry is free-text reflection tagged with an ISO week
type JournalEntry struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	Week        int            `json:"week"`
	Year        int            `json:"year"`
	Section     JournalSection `json:"section,omitempty"`
	Mood        Mood           `json:"mood,omitempty"`
	Prompt      string         `json:"prompt,omitempty"`
	PromptIndex *int           `json:"promptIndex,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
