package models

// SlotVerdict classifies one candidate start time.
type SlotVerdict struct {
	Start     int    `json:"start"` // minutes from midnight
	Label     string `json:"label"` // e.g., "9:30 AM - 10:00 AM"
	Available bool   `json:"available"`
}

// DaySlots is the availability answer for one resource on one date.
type DaySlots struct {
	BusinessID      string        `json:"businessId"`
	ResourceID      string        `json:"resourceId"`
	Date            string        `json:"date"`
	DurationMinutes int           `json:"durationMinutes"`
	Slots           []SlotVerdict `json:"slots"`
}

// BookingConflict describes the busy interval that blocks a proposed
// booking. Index points into the busy set the validation ran against.
type BookingConflict struct {
	Index int      `json:"index"`
	Busy  Interval `json:"busy"`
}
