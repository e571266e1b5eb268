package availability

import (
	"strings"

	"tribook/models"
	"tribook/utils"
)

// BuildBusyIntervals turns the raw reservation records of a business day
// into the set of occupied intervals for a resource.
//
// An empty resourceID keeps every reservation of the business that day:
// when no resource has been selected yet, every booking is conservatively
// treated as blocking so the grid never over-promises. Cancelled and
// no-show records never block. The output carries no ordering guarantee
// and may contain overlapping intervals when the stored data does; such
// anomalies block candidates like any other busy interval.
//
// Duration falls back through the record's own duration, then its resolved
// service's duration, then the package default. The only failure mode is a
// malformed legacy clock string, surfaced as *utils.MalformedTimeError.
func BuildBusyIntervals(resourceID, date string, reservations []models.Reservation) ([]models.Interval, error) {
	busy := make([]models.Interval, 0, len(reservations))

	for i := range reservations {
		r := &reservations[i]
		if !r.Blocks() {
			continue
		}
		if !sameCalendarDay(r.Date, date) {
			continue
		}
		if resourceID != "" && r.ResourceID != resourceID {
			continue
		}

		start := r.Start
		if r.StartClock != "" {
			parsed, err := utils.ParseClockMinutes(r.StartClock)
			if err != nil {
				return nil, err
			}
			start = parsed
		}

		busy = append(busy, models.IntervalAt(start, reservationDuration(r)))
	}

	return busy, nil
}

// reservationDuration resolves a stored reservation's blocking duration:
// its own duration field, else its service's resolved duration, else the
// default. Negative stored values clamp to zero instead of erroring.
func reservationDuration(r *models.Reservation) int {
	if r.Duration != nil {
		if *r.Duration < 0 {
			return 0
		}
		return *r.Duration
	}
	if r.Service.Resolved() {
		return r.Service.Service.BaseDurationMinutes
	}
	return DefaultDurationMinutes
}

// sameCalendarDay compares stored and query dates by calendar day only.
// Stored values occasionally carry a time-of-day tail
// ("2024-03-01T14:00:00Z"); everything past the day component is ignored.
func sameCalendarDay(stored, query string) bool {
	if idx := strings.IndexAny(stored, "T "); idx >= 0 {
		stored = stored[:idx]
	}
	return stored == query
}
