package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextAfterDaily(t *testing.T) {
	p := RecurrencePattern{Type: RecurDaily, Interval: 1}
	got := p.NextAfter(day(2026, 8, 28))
	if want := day(2026, 8, 29); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// A zero interval behaves like one; the template must always advance
	p.Interval = 0
	got = p.NextAfter(day(2026, 8, 28))
	if want := day(2026, 8, 29); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextAfterWeeklyPlain(t *testing.T) {
	p := RecurrencePattern{Type: RecurWeekly, Interval: 2}
	got := p.NextAfter(day(2026, 8, 28))
	if want := day(2026, 9, 11); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextAfterWeeklyDaysOfWeek(t *testing.T) {
	// 2026-08-28 is a Friday
	p := RecurrencePattern{
		Type:       RecurWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
	}

	got := p.NextAfter(day(2026, 8, 28))
	if want := day(2026, 8, 31); !got.Equal(want) { // the following Monday
		t.Fatalf("got %v (%v), want %v", got, got.Weekday(), want)
	}

	got = p.NextAfter(got)
	if want := day(2026, 9, 4); !got.Equal(want) { // back to Friday
		t.Fatalf("got %v (%v), want %v", got, got.Weekday(), want)
	}
}

func TestNextAfterMonthlyClampsDayOfMonth(t *testing.T) {
	p := RecurrencePattern{Type: RecurMonthly, Interval: 1, DayOfMonth: 31}

	got := p.NextAfter(day(2026, 1, 31))
	if want := day(2026, 2, 28); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	p.DayOfMonth = 15
	got = p.NextAfter(day(2026, 1, 15))
	if want := day(2026, 2, 15); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextAfterYearly(t *testing.T) {
	p := RecurrencePattern{Type: RecurYearly, Interval: 1}
	got := p.NextAfter(day(2026, 3, 14))
	if want := day(2027, 3, 14); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextAfterCustomInterval(t *testing.T) {
	p := RecurrencePattern{Type: RecurCustom, Interval: 10}
	got := p.NextAfter(day(2026, 8, 28))
	if want := day(2026, 9, 7); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpired(t *testing.T) {
	end := day(2026, 12, 31)
	p := RecurrencePattern{Type: RecurDaily, EndDate: &end}

	if p.Expired(day(2026, 12, 31)) {
		t.Fatal("expired on the end date itself")
	}
	if !p.Expired(day(2027, 1, 1)) {
		t.Fatal("not expired past the end date")
	}

	open := RecurrencePattern{Type: RecurDaily}
	if open.Expired(day(2100, 1, 1)) {
		t.Fatal("pattern with no end date expired")
	}
}
