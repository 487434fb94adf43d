// Package hours reports the office-hours window the site shows next to the
// phone number. Sunday through Friday, 6am to 6pm, local time.
package hours

import "time"

const (
	// Days run Sunday (0) through lastOpenDay inclusive; Saturday is closed.
	lastOpenDay = time.Friday
	startHour   = 6
	endHour     = 18
)

// Schedule describes the office-hours window and whether it is open at a
// point in time.
type Schedule struct {
	Days      []string `json:"days"`
	StartHour int      `json:"startHour"`
	EndHour   int      `json:"endHour"`
	OpenNow   bool     `json:"openNow"`
}

// IsOpen reports whether the office is open at t.
func IsOpen(t time.Time) bool {
	day := t.Weekday()
	hour := t.Hour()
	return day >= time.Sunday && day <= lastOpenDay &&
		hour >= startHour && hour < endHour
}

// Current returns the schedule evaluated at t.
func Current(t time.Time) Schedule {
	days := make([]string, 0, int(lastOpenDay)+1)
	for d := time.Sunday; d <= lastOpenDay; d++ {
		days = append(days, d.String())
	}

	return Schedule{
		Days:      days,
		StartHour: startHour,
		EndHour:   endHour,
		OpenNow:   IsOpen(t),
	}
}
