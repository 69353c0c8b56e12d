package timeutil

import "time"

// Fantasy scoring weeks run Monday through Sunday.

// lateGameCutoffHour is the local hour after which today no longer counts as a
// playable day (most NBA games have tipped off by then).
const lateGameCutoffHour = 22

// WeekStart returns the Monday of the week containing t, at midnight in t's location.
func WeekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDates returns the seven dates of the fantasy week containing t, Monday first.
func WeekDates(t time.Time) []time.Time {
	start := WeekStart(t)
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// RemainingPlayDays returns how many playable days are left in the fantasy week,
// counting today only while games can still tip off.
func RemainingPlayDays(t time.Time) int {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	remaining := 6 - daysSinceMonday
	if remaining < 0 {
		remaining = 0
	}
	if t.Hour() < lateGameCutoffHour {
		remaining++
	}
	return remaining
}
