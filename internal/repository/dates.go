package repository

import "time"

// dayBounds returns the half-open range [from 00:00, to+1 00:00) in UTC so
// that date columns compare consistently on every driver.
func dayBounds(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}
