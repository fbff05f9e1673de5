package storage

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

// Key prefix for current data. Earlier releases stored collections under
// bare keys; those are migrated on first read.
const keyPrefix = "daybrain:"

const (
	keyTasks            = "tasks"
	keyProjects         = "projects"
	keyCategories       = "categories"
	keyDailyPlans       = "dailyPlans"
	keyWorkSchedule     = "workSchedule"
	keyJournalEntries   = "journalEntries"
	keyRecurringTasks   = "recurringTasks"
	keyLastWeeklyReview = "lastWeeklyReview"
)

// Adapter maps each entity collection to a serialized document in the KV
// store. Reads degrade to the empty collection on absence or parse failure;
// write failures are logged and swallowed. Callers never see storage errors,
// they see stale data until the next successful write.
type Adapter struct {
	kv *KV
}

// NewAdapter wraps a KV store
func NewAdapter(kv *KV) *Adapter {
	return &Adapter{kv: kv}
}

// get loads a collection into out, migrating a legacy unprefixed key if the
// namespaced key is absent. out is left untouched on any failure.
func (a *Adapter) get(collection string, out any) {
	raw, ok, err := a.kv.Get(keyPrefix + collection)
	if err != nil {
		log.Printf("[storage] read %s: %v", collection, err)
		return
	}

	if !ok {
		raw, ok = a.migrateLegacy(collection)
		if !ok {
			return
		}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("[storage] parse %s: %v", collection, err)
	}
}

// migrateLegacy performs the one-time move of a collection from its bare
// legacy key to the namespaced key. The legacy value is parsed before the
// move; an unparseable legacy value is left where it is.
func (a *Adapter) migrateLegacy(collection string) (string, bool) {
	raw, ok, err := a.kv.Get(collection)
	if err != nil || !ok {
		if err != nil {
			log.Printf("[storage] read legacy %s: %v", collection, err)
		}
		return "", false
	}

	if !json.Valid([]byte(raw)) {
		log.Printf("[storage] legacy %s is not valid JSON, skipping migration", collection)
		return "", false
	}

	if _, err := a.kv.Rename(collection, keyPrefix+collection); err != nil {
		log.Printf("[storage] migrate legacy %s: %v", collection, err)
		return raw, true // still serve the parsed legacy data
	}

	log.Printf("[storage] migrated legacy key %q", collection)
	return raw, true
}

func (a *Adapter) put(collection string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[storage] encode %s: %v", collection, err)
		return
	}
	if err := a.kv.Set(keyPrefix+collection, string(raw)); err != nil {
		log.Printf("[storage] write %s: %v", collection, err)
	}
}

// Tasks returns the stored task collection
func (a *Adapter) Tasks() []model.Task {
	var tasks []model.Task
	a.get(keyTasks, &tasks)
	return tasks
}

// SaveTasks overwrites the stored task collection
func (a *Adapter) SaveTasks(tasks []model.Task) {
	a.put(keyTasks, tasks)
}

// Projects returns the stored project collection
func (a *Adapter) Projects() []model.Project {
	var projects []model.Project
	a.get(keyProjects, &projects)
	return projects
}

// SaveProjects overwrites the stored project collection
func (a *Adapter) SaveProjects(projects []model.Project) {
	a.put(keyProjects, projects)
}

// Categories returns the stored category collection
func (a *Adapter) Categories() []model.Category {
	var categories []model.Category
	a.get(keyCategories, &categories)
	return categories
}

// SaveCategories overwrites the stored category collection
func (a *Adapter) SaveCategories(categories []model.Category) {
	a.put(keyCategories, categories)
}

// DailyPlans returns the stored daily plans
func (a *Adapter) DailyPlans() []model.DailyPlan {
	var plans []model.DailyPlan
	a.get(keyDailyPlans, &plans)
	return plans
}

// SaveDailyPlans overwrites the stored daily plans
func (a *Adapter) SaveDailyPlans(plans []model.DailyPlan) {
	a.put(keyDailyPlans, plans)
}

// WorkSchedule returns the stored work schedule, nil if unset
func (a *Adapter) WorkSchedule() *model.WorkSchedule {
	var schedule *model.WorkSchedule
	a.get(keyWorkSchedule, &schedule)
	return schedule
}

// SaveWorkSchedule overwrites the stored work schedule
func (a *Adapter) SaveWorkSchedule(schedule *model.WorkSchedule) {
	a.put(keyWorkSchedule, schedule)
}

// JournalEntries returns the stored journal entries
func (a *Adapter) JournalEntries() []model.JournalEntry {
	var entries []model.JournalEntry
	a.get(keyJournalEntries, &entries)
	return entries
}

// SaveJournalEntries overwrites the stored journal entries
func (a *Adapter) SaveJournalEntries(entries []model.JournalEntry) {
	a.put(keyJournalEntries, entries)
}

// RecurringTasks returns the stored recurring task templates
func (a *Adapter) RecurringTasks() []model.RecurringTask {
	var recurring []model.RecurringTask
	a.get(keyRecurringTasks, &recurring)
	return recurring
}

// SaveRecurringTasks overwrites the stored recurring task templates
func (a *Adapter) SaveRecurringTasks(recurring []model.RecurringTask) {
	a.put(keyRecurringTasks, recurring)
}

// LastWeeklyReview returns the date of the last completed weekly review,
// nil when no review has been recorded
func (a *Adapter) LastWeeklyReview() *time.Time {
	var when *time.Time
	a.get(keyLastWeeklyReview, &when)
	return when
}

// SaveLastWeeklyReview records the date of the last completed weekly review
func (a *Adapter) SaveLastWeeklyReview(when time.Time) {
	a.put(keyLastWeeklyReview, when)
}
