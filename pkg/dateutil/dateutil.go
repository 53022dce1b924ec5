package dateutil

import (
	"time"
)

const DayFormat = "2006-01-02"

// DayKey projects an instant to its local calendar date as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayFormat)
}

// Noon returns noon of t's local calendar day. Anchoring day arithmetic at
// noon keeps daylight saving transitions from producing 23h or 25h "days".
func Noon(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, loc)
}

// DaysBetween counts whole calendar days from a to b. Same local day gives
// 0, b on the day after a gives 1.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	return int(Noon(b, loc).Sub(Noon(a, loc)).Round(24*time.Hour) / (24 * time.Hour))
}

// MonthWindow returns the absolute-time query window
// [first day of month, first day of next month) in loc.
func MonthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	begin := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return begin, begin.AddDate(0, 1, 0)
}
