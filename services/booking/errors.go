package booking

import (
	"errors"
	"fmt"

	"tribook/models"
)

// ErrSessionNotFound is returned when a booking session is missing or
// has already expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrOutsideBusinessHours rejects a proposed booking that starts or ends
// outside the resource's bookable window.
var ErrOutsideBusinessHours = errors.New("requested slot is outside business hours")

// ConflictError reports that the proposed interval is no longer free:
// another booking was confirmed between slot display and submission.
// The caller surfaces it as "this slot was just taken" and re-fetches
// fresh slots.
type ConflictError struct {
	Proposed models.Interval
	Conflict models.BookingConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("proposed booking %s conflicts with existing reservation %s",
		e.Proposed.Label(), e.Conflict.Busy.Label())
}

// AsConflict unwraps a ConflictError from an error chain.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
