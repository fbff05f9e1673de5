package scheduler

import (
	"testing"
	"time"
)

func TestEveryRejectsBadIntervals(t *testing.T) {
	s := New(time.UTC)

	if _, err := s.Every(0, func() {}); err == nil {
		t.Fatal("accepted a zero interval")
	}
	if _, err := s.Every(-time.Second, func() {}); err == nil {
		t.Fatal("accepted a negative interval")
	}
	if _, err := s.Every(time.Minute, func() {}); err != nil {
		t.Fatalf("rejected a valid interval: %v", err)
	}
}

func TestDailyRejectsBadClockValues(t *testing.T) {
	s := New(time.UTC)

	cases := []struct {
		hour, minute int
		ok           bool
	}{
		{9, 0, true},
		{0, 0, true},
		{23, 59, true},
		{24, 0, false},
		{-1, 0, false},
		{9, 60, false},
		{9, -1, false},
	}
	for _, tc := range cases {
		_, err := s.Daily(tc.hour, tc.minute, func() {})
		if tc.ok && err != nil {
			t.Fatalf("Daily(%d, %d) failed: %v", tc.hour, tc.minute, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("Daily(%d, %d) accepted out-of-range values", tc.hour, tc.minute)
		}
	}
}

func TestEveryFiresRegisteredJob(t *testing.T) {
	s := New(time.UTC)

	fired := make(chan struct{}, 1)
	if _, err := s.Every(time.Second, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("Every failed: %v", err)
	}

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job never fired")
	}
}
