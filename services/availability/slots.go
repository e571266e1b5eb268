package availability

import "tribook/models"

// GenerateSlotStarts enumerates candidate start times across the open
// hours at the given step. Every returned start keeps the whole booking
// inside [OpenMinutes, CloseMinutes); the last candidate is
// close - duration itself when the step lands on it. A duration longer
// than the open window yields no candidates — that is an ordinary empty
// day, not an error.
func GenerateSlotStarts(hours models.BusinessHours, effectiveDuration, stepMinutes int) ([]int, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	if effectiveDuration < 0 {
		effectiveDuration = 0
	}

	starts := []int{}
	for m := hours.OpenMinutes; m+effectiveDuration <= hours.CloseMinutes; m += stepMinutes {
		starts = append(starts, m)
	}
	return starts, nil
}
