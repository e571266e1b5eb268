package availability

import (
	"context"

	"tribook/models"
)

// Query identifies one availability question: which starts on this date
// can legally take a booking of the requested shape.
type Query struct {
	BusinessID              string
	ResourceID              string // empty = no resource selected yet; all bookings of the business block
	Date                    string // "YYYY-MM-DD"
	ServiceID               string
	SelectedOptions         []string
	ExplicitDurationMinutes *int
}

// AvailabilityService answers slot availability for one resource-day and
// resolves effective booking durations.
type AvailabilityService interface {
	GetDaySlots(ctx context.Context, q Query) (*models.DaySlots, error)
	// EffectiveDuration resolves the minutes a booking described by q
	// would occupy, per the duration priority chain.
	EffectiveDuration(ctx context.Context, q Query) (int, error)
}
