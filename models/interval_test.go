package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{540, 600}, Interval{660, 720}, false},
		{"partial overlap", Interval{540, 630}, Interval{600, 660}, true},
		{"containment", Interval{540, 720}, Interval{570, 600}, true},
		{"identical", Interval{540, 600}, Interval{540, 600}, true},
		{"touching endpoints", Interval{540, 600}, Interval{600, 660}, false},
		{"touching the other way", Interval{600, 660}, Interval{540, 600}, false},
		{"zero duration inside busy block", Interval{570, 570}, Interval{540, 600}, false},
		{"zero duration busy block", Interval{540, 600}, Interval{570, 570}, false},
		{"negative length", Interval{600, 540}, Interval{500, 700}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalAt(t *testing.T) {
	iv := IntervalAt(540, 90)
	assert.Equal(t, Interval{Start: 540, End: 630}, iv)
	assert.Equal(t, 90, iv.Duration())
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{570, "9:30 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{1080, "6:00 PM"},
		{1439, "11:59 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}

func TestIntervalLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:30 AM", Interval{540, 630}.Label())
}
