package services

import "time"

// dateOnly truncates to midnight in the value's own location; day-level
// comparisons (license expiry vs today) use this.
func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
