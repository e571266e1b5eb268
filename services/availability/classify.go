package availability

import "tribook/models"

// ClassifySlots marks each candidate start available or not against the
// busy set, using the half-open overlap rule: a booking ending exactly
// when another begins is allowed. The scan is deliberately
// O(candidates × busy) — both sets are bounded by a single business day
// at slot granularity.
func ClassifySlots(candidates []int, busy []models.Interval, effectiveDuration int) []models.SlotVerdict {
	verdicts := make([]models.SlotVerdict, len(candidates))
	for i, start := range candidates {
		proposed := models.IntervalAt(start, effectiveDuration)
		verdicts[i] = models.SlotVerdict{
			Start:     start,
			Label:     proposed.Label(),
			Available: !conflictsAny(proposed, busy),
		}
	}
	return verdicts
}

// ValidateProposedBooking re-checks one proposed interval against the
// busy set, as the booking flow must do immediately before persisting.
// A conflict is a typed result carrying the first blocking interval and
// its index, not an error: "this slot was just taken" is an expected
// outcome, and the caller re-fetches fresh slots.
func ValidateProposedBooking(proposed models.Interval, busy []models.Interval) (bool, *models.BookingConflict) {
	for i, b := range busy {
		if proposed.Overlaps(b) {
			return false, &models.BookingConflict{Index: i, Busy: b}
		}
	}
	return true, nil
}

func conflictsAny(proposed models.Interval, busy []models.Interval) bool {
	for _, b := range busy {
		if proposed.Overlaps(b) {
			return true
		}
	}
	return false
}
