package schedule

import "time"

// HasOverlap reports whether [start, end) intersects any appointment owned by
// employeeID, under open-interval semantics: touching edges do not overlap.
// excludeID skips the appointment being moved or resized so it never conflicts
// with itself. Cancelled and no-show appointments do not block the grid.
//
// This is a query, not an enforced constraint; callers choose what to do with
// a positive result.
func HasOverlap(appointments []Appointment, employeeID string, start, end time.Time, excludeID string) bool {
	for _, ap := range appointments {
		if ap.EmployeeID != employeeID {
			continue
		}
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if ap.Status == StatusCancelled || ap.Status == StatusNoShow {
			continue
		}
		if ap.Start.Before(end) && ap.End.After(start) {
			return true
		}
	}
	return false
}
