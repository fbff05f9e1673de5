package storage

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := NewAdapter(openTestKV(t))

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Write report", DueDate: &due, Priority: model.PriorityHigh, CreatedAt: now, UpdatedAt: now},
	}
	projects := []model.Project{{ID: "p1", Name: "Work", Color: "#ff0000", CreatedAt: now, UpdatedAt: now}}
	categories := []model.Category{{ID: "c1", Name: "Deep", CreatedAt: now}}
	plans := []model.DailyPlan{{Date: "2026-08-28", Blocks: []model.TimeBlock{
		{ID: "b1", Start: "09:00", End: "10:30", TaskIDs: []string{"t1"}},
	}}}
	recurring := []model.RecurringTask{{
		ID: "r1", Title: "Water plants", Active: true, NextDue: due,
		Pattern:   model.RecurrencePattern{Type: model.RecurDaily, Interval: 1},
		CreatedAt: now,
	}}

	src.SaveTasks(tasks)
	src.SaveProjects(projects)
	src.SaveCategories(categories)
	src.SaveDailyPlans(plans)
	src.SaveRecurringTasks(recurring)

	data, err := src.ExportData(now)
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}

	dst := NewAdapter(openTestKV(t))
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	if got := dst.Tasks(); !reflect.DeepEqual(got, tasks) {
		t.Fatalf("tasks round trip:\n got  %+v\n want %+v", got, tasks)
	}
	if got := dst.Projects(); !reflect.DeepEqual(got, projects) {
		t.Fatalf("projects round trip: %+v", got)
	}
	if got := dst.Categories(); !reflect.DeepEqual(got, categories) {
		t.Fatalf("categories round trip: %+v", got)
	}
	if got := dst.DailyPlans(); !reflect.DeepEqual(got, plans) {
		t.Fatalf("daily plans round trip: %+v", got)
	}
	if got := dst.RecurringTasks(); !reflect.DeepEqual(got, recurring) {
		t.Fatalf("recurring round trip: %+v", got)
	}
}

func TestExportEmptyStoreHasAllCollectionKeys(t *testing.T) {
	a := NewAdapter(openTestKV(t))

	data, err := a.ExportData(time.Now())
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not a JSON object: %v", err)
	}
	for _, key := range []string{
		"tasks", "projects", "categories", "dailyPlans",
		"workSchedule", "recurringTasks", "journalEntries",
		"exportDate", "version",
	} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("export of an empty store is missing key %q", key)
		}
	}
	for _, key := range []string{"tasks", "projects", "categories", "dailyPlans", "recurringTasks", "journalEntries"} {
		if string(raw[key]) == "null" {
			t.Fatalf("collection %q exported as null, want []", key)
		}
	}

	// A fresh store's own export must import cleanly
	dst := NewAdapter(openTestKV(t))
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData of an empty export failed: %v", err)
	}
}

func TestImportPartialDocument(t *testing.T) {
	a := NewAdapter(openTestKV(t))

	now := time.Now()
	a.SaveTasks([]model.Task{{ID: "keep", Title: "Keep me", CreatedAt: now, UpdatedAt: now}})

	// Only projects present; tasks must be untouched
	doc := `{"projects":[{"id":"p9","name":"Imported"}]}`
	if err := a.ImportData([]byte(doc)); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	if got := a.Tasks(); len(got) != 1 || got[0].ID != "keep" {
		t.Fatalf("partial import touched tasks: %+v", got)
	}
	if got := a.Projects(); len(got) != 1 || got[0].Name != "Imported" {
		t.Fatalf("projects not imported: %+v", got)
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	a := NewAdapter(openTestKV(t))

	now := time.Now()
	a.SaveTasks([]model.Task{{ID: "t1", Title: "Untouchable", CreatedAt: now, UpdatedAt: now}})

	cases := []struct {
		name string
		doc  string
	}{
		{"not json", "definitely not json"},
		{"no recognized keys", `{"foo": 1, "bar": []}`},
		{"json array", `[1,2,3]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := a.ImportData([]byte(tc.doc)); err == nil {
				t.Fatal("ImportData accepted an invalid document")
			}
			if got := a.Tasks(); len(got) != 1 {
				t.Fatalf("rejected import still modified tasks: %+v", got)
			}
		})
	}
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	a := NewAdapter(openTestKV(t))

	doc := `{"tasks":[{"id":"t1","title":"From import"}],"supabaseSession":{"x":1}}`
	if err := a.ImportData([]byte(doc)); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if got := a.Tasks(); len(got) != 1 || got[0].Title != "From import" {
		t.Fatalf("tasks = %+v", got)
	}
}
