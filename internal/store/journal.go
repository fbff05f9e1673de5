package store

import (
	"fmt"
	"strings"

	"github.com/fchant/daybrain/internal/model"
)

// JournalEntries returns a copy of every journal entry
func (s *Store) JournalEntries() []model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.JournalEntry(nil), s.journal...)
}

// JournalEntriesForWeek returns the entries tagged with the given ISO week
func (s *Store) JournalEntriesForWeek(week, year int) []model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []model.JournalEntry
	for _, e := range s.journal {
		if e.Week == week && e.Year == year {
			entries = append(entries, e)
		}
	}
	return entries
}

// AddJournalEntry records a new entry, assigning id and timestamp
func (s *Store) AddJournalEntry(entry model.JournalEntry) (model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(entry.Content) == "" {
		return model.JournalEntry{}, fmt.Errorf("journal entry must not be empty")
	}

	entry.ID = s.newID()
	entry.CreatedAt = s.now()
	if entry.Week == 0 {
		year, week := entry.CreatedAt.ISOWeek()
		entry.Year = year
		entry.Week = week
	}

	s.journal = append(s.journal, entry)
	s.adapter.SaveJournalEntries(s.journal)
	return entry, nil
}

// UpdateJournalEntry replaces the entry with a matching id
func (s *Store) UpdateJournalEntry(entry model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.journal {
		if s.journal[i].ID == entry.ID {
			entry.CreatedAt = s.journal[i].CreatedAt
			s.journal[i] = entry
			s.adapter.SaveJournalEntries(s.journal)
			return nil
		}
	}
	return fmt.Errorf("journal entry %s not found", entry.ID)
}

// DeleteJournalEntry removes an entry
func (s *Store) DeleteJournalEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.journal {
		if s.journal[i].ID == id {
			s.journal = append(s.journal[:i:i], s.journal[i+1:]...)
			s.adapter.SaveJournalEntries(s.journal)
			return nil
		}
	}
	return fmt.Errorf("journal entry %s not found", id)
}
