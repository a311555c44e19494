package booking

import "time"

// DateRange is a pair of calendar dates (midnight UTC, no time component).
// Both endpoints are occupied nights, so the range is inclusive on both sides.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		start: TruncateToDate(start),
		end:   TruncateToDate(end),
	}
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps reports whether two ranges share at least one day. Touching
// endpoints count: a range starting on the day another ends still overlaps.
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.end.Before(other.start) || r.start.After(other.end))
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// TruncateToDate drops the time component, normalizing to midnight UTC so
// date comparisons are insensitive to the wall clock and timezone of callers.
func TruncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
