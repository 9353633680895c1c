package entity

import "time"

// DayLayout is the calendar-day format used in group keys
const DayLayout = "2006-01-02"

// CalendarDay returns the calendar day of t in loc
func CalendarDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// DayBounds returns [start, end) of the calendar day containing t in loc
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// StartOfDay parses a YYYY-MM-DD day in loc
func StartOfDay(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, loc)
}
