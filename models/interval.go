package models

import "fmt"

// Interval represents a half-open time block [Start, End) in minutes from midnight.
type Interval struct {
	Start int `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   int `bson:"end" json:"end"`     // minutes from midnight (e.g., 1080 for 6:00 PM)
}

// IntervalAt builds the interval occupied by a booking of the given
// duration starting at start.
func IntervalAt(start, duration int) Interval {
	return Interval{Start: start, End: start + duration}
}

// Overlaps reports whether two half-open intervals share any time.
// Touching endpoints do not overlap, so back-to-back bookings are legal.
// Degenerate (zero or negative length) intervals overlap nothing.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Duration() <= 0 || other.Duration() <= 0 {
		return false
	}
	return iv.Start < other.End && other.Start < iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Label renders a human-readable range, e.g. "9:00 AM - 10:30 AM".
func (iv Interval) Label() string {
	return fmt.Sprintf("%s - %s", FormatMinutes(iv.Start), FormatMinutes(iv.End))
}

// FormatMinutes renders minutes-from-midnight as a 12-hour clock string.
func FormatMinutes(m int) string {
	h := m / 60
	min := m % 60
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, min, suffix)
}
