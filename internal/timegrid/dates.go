package timegrid

import "time"

// ===============================
// Pure date helpers
// ===============================

// StartOfWeek returns midnight of the Sunday beginning t's week, in t's
// location.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MinutesOfDay converts t to minutes from midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AtMinutes rebuilds a wall-clock time from a base day plus minutes from
// midnight, in the base day's location.
func AtMinutes(day time.Time, minutes int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		minutes/60, minutes%60, 0, 0,
		day.Location(),
	)
}
