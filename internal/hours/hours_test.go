package hours

import (
	"testing"
	"time"
)

func at(weekday time.Weekday, hour int) time.Time {
	// 2026-08-02 is a Sunday.
	base := time.Date(2026, 8, 2, hour, 0, 0, 0, time.Local)
	return base.AddDate(0, 0, int(weekday))
}

func TestIsOpen(t *testing.T) {
	cases := []struct {
		name     string
		when     time.Time
		wantOpen bool
	}{
		{"sunday morning", at(time.Sunday, 9), true},
		{"friday afternoon", at(time.Friday, 17), true},
		{"opens at 6", at(time.Monday, 6), true},
		{"before opening", at(time.Monday, 5), false},
		{"closes at 18", at(time.Monday, 18), false},
		{"saturday closed all day", at(time.Saturday, 12), false},
	}

	for _, tc := range cases {
		if got := IsOpen(tc.when); got != tc.wantOpen {
			t.Errorf("%s: IsOpen(%v) = %v, want %v", tc.name, tc.when, got, tc.wantOpen)
		}
	}
}

func TestCurrentSchedule(t *testing.T) {
	s := Current(at(time.Saturday, 12))

	if s.OpenNow {
		t.Fatal("saturday should be closed")
	}
	if s.StartHour != 6 || s.EndHour != 18 {
		t.Fatalf("window = %d-%d, want 6-18", s.StartHour, s.EndHour)
	}
	if len(s.Days) != 6 || s.Days[0] != "Sunday" || s.Days[5] != "Friday" {
		t.Fatalf("days = %v, want Sunday through Friday", s.Days)
	}
}
