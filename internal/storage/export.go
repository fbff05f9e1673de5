package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

// ExportVersion tags export documents with the backup format version
const ExportVersion = "1.1.0"

// ExportDocument is the single-file backup format. Every collection key is
// always present in an export, empty or not, so any export round-trips
// through import. Import still accepts a partial document; only the
// collections present are touched.
type ExportDocument struct {
	Tasks          []model.Task          `json:"tasks"`
	Projects       []model.Project       `json:"projects"`
	Categories     []model.Category      `json:"categories"`
	DailyPlans     []model.DailyPlan     `json:"dailyPlans"`
	WorkSchedule   *model.WorkSchedule   `json:"workSchedule"`
	RecurringTasks []model.RecurringTask `json:"recurringTasks"`
	JournalEntries []model.JournalEntry  `json:"journalEntries"`
	ExportDate     time.Time             `json:"exportDate"`
	Version        string                `json:"version"`
}

var collectionKeys = []string{
	keyTasks, keyProjects, keyCategories, keyDailyPlans,
	keyWorkSchedule, keyRecurringTasks, keyJournalEntries,
}

// ExportData serializes every collection into one JSON document. Absent
// collections are written as empty arrays, not null.
func (a *Adapter) ExportData(now time.Time) ([]byte, error) {
	doc := ExportDocument{
		Tasks:          orEmpty(a.Tasks()),
		Projects:       orEmpty(a.Projects()),
		Categories:     orEmpty(a.Categories()),
		DailyPlans:     orEmpty(a.DailyPlans()),
		WorkSchedule:   a.WorkSchedule(),
		RecurringTasks: orEmpty(a.RecurringTasks()),
		JournalEntries: orEmpty(a.JournalEntries()),
		ExportDate:     now,
		Version:        ExportVersion,
	}

	return json.MarshalIndent(doc, "", "  ")
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ImportData overwrites each collection present in the document. The whole
// document is validated before any write happens: it must parse as a JSON
// object and contain at least one recognized collection key. Unknown
// top-level keys are ignored.
func (a *Adapter) ImportData(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid import document: %w", err)
	}

	recognized := false
	for _, key := range collectionKeys {
		if _, ok := raw[key]; ok {
			recognized = true
			break
		}
	}
	if !recognized {
		return fmt.Errorf("import document contains no recognized collections")
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid import document: %w", err)
	}

	if _, ok := raw[keyTasks]; ok {
		a.SaveTasks(doc.Tasks)
	}
	if _, ok := raw[keyProjects]; ok {
		a.SaveProjects(doc.Projects)
	}
	if _, ok := raw[keyCategories]; ok {
		a.SaveCategories(doc.Categories)
	}
	if _, ok := raw[keyDailyPlans]; ok {
		a.SaveDailyPlans(doc.DailyPlans)
	}
	if _, ok := raw[keyWorkSchedule]; ok {
		a.SaveWorkSchedule(doc.WorkSchedule)
	}
	if _, ok := raw[keyRecurringTasks]; ok {
		a.SaveRecurringTasks(doc.RecurringTasks)
	}
	if _, ok := raw[keyJournalEntries]; ok {
		a.SaveJournalEntries(doc.JournalEntries)
	}

	return nil
}
