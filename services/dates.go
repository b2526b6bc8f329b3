package services

import (
	"fmt"
	"time"
)

// ParseDayWindow expands a YYYY-MM-DD date into the full-day window in
// IST. All settlement dates are Indian calendar dates regardless of where
// the service runs. The bounds come back in UTC: sqlite stores timestamps
// as text with their offset, and a bound carrying a different offset than
// the stored rows would compare lexically, not as an instant.
func ParseDayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, istLocation)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	start := day.UTC()
	end := day.Add(24*time.Hour - time.Millisecond).UTC()
	return start, end, nil
}
