package availability

import "errors"

// DefaultDurationMinutes is assumed whenever neither an explicit duration
// nor a resolvable service is available.
const DefaultDurationMinutes = 30

// DefaultStepMinutes is the slot granularity used when the caller does
// not configure one.
const DefaultStepMinutes = 30

// ErrInvalidStep rejects slot generation with a non-positive step.
var ErrInvalidStep = errors.New("slot step must be a positive number of minutes")
