package leave

import "time"

// Working-day calendar: Sundays are always off, and so are the 2nd and 4th
// Saturdays of each month. The Saturday ordinal is a fixed day-of-month
// bucket (2nd = day 8-14, 4th = day 22-28), not an ordinal relative to the
// first Saturday of the month. For months that start on a Saturday the two
// can disagree; the bucket is the policy as configured, so it is kept as is.

// IsWorkingDay reports whether d is a working day under the weekly-off and
// alternating-Saturday rules. Holiday lists are layered on by callers that
// have them; they are not part of the core rule.
func IsWorkingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		dom := d.Day()
		if (dom >= 8 && dom <= 14) || (dom >= 22 && dom <= 28) {
			return false
		}
	}
	return true
}

// CountWorkingDays counts working days in [start, end] inclusive.
// A degenerate range (start after end) yields 0.
func CountWorkingDays(start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}
