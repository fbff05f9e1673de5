package store

import (
	"testing"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

func dailyTemplate(title string) model.RecurringTask {
	return model.RecurringTask{
		Title:   title,
		Pattern: model.RecurrencePattern{Type: model.RecurDaily, Interval: 1},
	}
}

func TestAddRecurringTaskDefaults(t *testing.T) {
	s, clock := newTestStore(t)

	rt, err := s.AddRecurringTask(dailyTemplate("Water plants"))
	if err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}
	if rt.ID == "" {
		t.Fatal("no id assigned")
	}
	if !rt.Active {
		t.Fatal("template not active")
	}
	if rt.LastGenerated != nil {
		t.Fatal("LastGenerated should start unset")
	}
	if want := model.DateOf(clock.Now()); !rt.NextDue.Equal(want) {
		t.Fatalf("NextDue = %v, want %v", rt.NextDue, want)
	}

	if _, err := s.AddRecurringTask(dailyTemplate("  ")); err == nil {
		t.Fatal("accepted a blank title")
	}
}

func TestUpdateRecurringTaskRejectsBlankTitle(t *testing.T) {
	s, _ := newTestStore(t)

	rt, err := s.AddRecurringTask(dailyTemplate("Water plants"))
	if err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}

	rt.Title = "   "
	if err := s.UpdateRecurringTask(rt); err == nil {
		t.Fatal("accepted a blank title on update")
	}

	// The stored template is untouched and still generates
	if got := s.RecurringTasks()[0].Title; got != "Water plants" {
		t.Fatalf("title = %q", got)
	}
	if got := len(s.CheckRecurring()); got != 1 {
		t.Fatalf("generated %d tasks, want 1", got)
	}
}

func TestCheckRecurringGeneratesAndAdvances(t *testing.T) {
	s, clock := newTestStore(t)
	today := model.DateOf(clock.Now())

	rt, err := s.AddRecurringTask(dailyTemplate("Water plants"))
	if err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}

	generated := s.CheckRecurring()
	if len(generated) != 1 {
		t.Fatalf("generated %d tasks, want 1", len(generated))
	}
	task := generated[0]
	if task.Title != "Water plants" {
		t.Fatalf("title = %q", task.Title)
	}
	if task.RecurringTaskID == nil || *task.RecurringTaskID != rt.ID {
		t.Fatal("generated task does not point back at its template")
	}
	if task.DueDate == nil || !task.DueDate.Equal(today) {
		t.Fatalf("due = %v, want %v", task.DueDate, today)
	}

	templates := s.RecurringTasks()
	if len(templates) != 1 {
		t.Fatalf("have %d templates", len(templates))
	}
	if want := today.AddDate(0, 0, 1); !templates[0].NextDue.Equal(want) {
		t.Fatalf("NextDue = %v, want %v", templates[0].NextDue, want)
	}
	if templates[0].LastGenerated == nil {
		t.Fatal("LastGenerated not stamped")
	}
}

func TestCheckRecurringSameDayGuard(t *testing.T) {
	s, clock := newTestStore(t)

	if _, err := s.AddRecurringTask(dailyTemplate("Water plants")); err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}

	if got := len(s.CheckRecurring()); got != 1 {
		t.Fatalf("first check generated %d tasks, want 1", got)
	}
	// Same calendar day: the stamp suppresses a second generation even
	// though NextDue has not moved past today in wall-clock terms.
	clock.Advance(2 * time.Hour)
	if got := len(s.CheckRecurring()); got != 0 {
		t.Fatalf("second check on the same day generated %d tasks", got)
	}

	clock.Advance(24 * time.Hour)
	if got := len(s.CheckRecurring()); got != 1 {
		t.Fatalf("next-day check generated %d tasks, want 1", got)
	}
}

func TestCheckRecurringSkipsInactiveAndFuture(t *testing.T) {
	s, clock := newTestStore(t)

	future := dailyTemplate("Next week")
	future.NextDue = clock.Now().AddDate(0, 0, 7)
	if _, err := s.AddRecurringTask(future); err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}

	paused, err := s.AddRecurringTask(dailyTemplate("Paused"))
	if err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}
	paused.Active = false
	if err := s.UpdateRecurringTask(paused); err != nil {
		t.Fatalf("UpdateRecurringTask failed: %v", err)
	}

	if got := len(s.CheckRecurring()); got != 0 {
		t.Fatalf("generated %d tasks, want 0", got)
	}
}

func TestCheckRecurringDeactivatesExpiredTemplate(t *testing.T) {
	s, clock := newTestStore(t)
	today := model.DateOf(clock.Now())

	rt := dailyTemplate("Short lived")
	rt.Pattern.EndDate = &today
	if _, err := s.AddRecurringTask(rt); err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}

	if got := len(s.CheckRecurring()); got != 1 {
		t.Fatalf("generated %d tasks, want 1", got)
	}
	templates := s.RecurringTasks()
	if templates[0].Active {
		t.Fatal("template still active past its end date")
	}
}

func TestDeleteRecurringTaskKeepsGeneratedTasks(t *testing.T) {
	s, _ := newTestStore(t)

	rt, err := s.AddRecurringTask(dailyTemplate("Water plants"))
	if err != nil {
		t.Fatalf("AddRecurringTask failed: %v", err)
	}
	generated := s.CheckRecurring()
	if len(generated) != 1 {
		t.Fatalf("generated %d tasks", len(generated))
	}

	if err := s.DeleteRecurringTask(rt.ID); err != nil {
		t.Fatalf("DeleteRecurringTask failed: %v", err)
	}
	if len(s.RecurringTasks()) != 0 {
		t.Fatal("template not removed")
	}

	task, ok := s.Task(generated[0].ID)
	if !ok {
		t.Fatal("generated task lost with its template")
	}
	if task.RecurringTaskID == nil || *task.RecurringTaskID != rt.ID {
		t.Fatal("provenance link stripped")
	}
}
