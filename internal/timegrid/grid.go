package timegrid

import (
	"math"
	"time"
)

// ===============================
// Grid constants
// ===============================

const (
	// HourStart / HourEnd bound the visible calendar day.
	HourStart = 8
	HourEnd   = 21

	// SlotHeight is the number of grid units one hour occupies.
	SlotHeight = 60

	// MinExtent keeps very short intervals visible on the grid.
	// Presentational only; never read a duration back from it.
	MinExtent = 20

	DefaultSnapMinutes = 15
	MinDurationMinutes = 15
)

// PositionOf returns the grid offset of the interval start.
func PositionOf(start time.Time) float64 {
	h := float64(start.Hour()) + float64(start.Minute())/60.0
	return (h - HourStart) * SlotHeight
}

// ExtentOf returns the grid length of [start, end), floored at MinExtent.
func ExtentOf(start, end time.Time) float64 {
	sh := float64(start.Hour()) + float64(start.Minute())/60.0
	eh := float64(end.Hour()) + float64(end.Minute())/60.0
	ext := (eh - sh) * SlotHeight
	if ext < MinExtent {
		return MinExtent
	}
	return ext
}

// Snap rounds minutes to the nearest multiple of interval, half away from
// zero, so 7.5 minutes on a 15-minute grid snaps up to 15.
func Snap(minutes float64, interval int) int {
	if interval <= 0 {
		interval = DefaultSnapMinutes
	}
	return int(math.Floor(minutes/float64(interval)+0.5)) * int(interval)
}

// ClampToWindow forces a (start, end) pair in minutes-from-midnight inside the
// global working window while guaranteeing at least minDuration minutes.
// Resolution order matters: the swap guard runs before the boundary clamps,
// and the minimum duration is restored by growing the end when room remains
// below HourEnd, otherwise by shifting the start back.
func ClampToWindow(startMin, endMin, minDuration int) (int, int) {
	if minDuration <= 0 {
		minDuration = MinDurationMinutes
	}

	lo := HourStart * 60
	hi := HourEnd * 60

	if endMin <= startMin {
		endMin = startMin + minDuration
	}
	if startMin < lo {
		startMin = lo
	}
	if endMin > hi {
		endMin = hi
	}
	if endMin-startMin < minDuration {
		if startMin+minDuration <= hi {
			endMin = startMin + minDuration
		} else {
			endMin = hi
			startMin = hi - minDuration
		}
	}

	return startMin, endMin
}
