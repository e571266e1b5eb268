package resolvers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tribook/models"
	"tribook/services/availability"
	"tribook/services/booking"
	"tribook/utils"
)

// BookSlotInput is the unified input for the integrated booking flow.
type BookSlotInput struct {
	// If empty, a new hold is created once a start is chosen.
	SessionID string `json:"sessionID"`
	// The booking request details (business, resource, date, service, options).
	BookingRequest models.BookingRequest `json:"bookingRequest"`
	// When true the resolver only answers availability for the request's day.
	QueryOnly bool `json:"queryOnly"`
	// Set once the user confirms the held slot.
	Confirm bool `json:"confirm"`
}

// Resolver holds dependencies for the booking mutation.
type Resolver struct {
	AvailabilityService availability.AvailabilityService
	BookingService      booking.BookingService
}

// BookSlot integrates availability display, slot hold, and booking
// confirmation behind one entry point.
func (r *Resolver) BookSlot(ctx context.Context, input BookSlotInput) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	// PHASE 1: availability display — no session yet, nothing persisted.
	if input.QueryOnly {
		slots, err := r.AvailabilityService.GetDaySlots(ctx, availability.Query{
			BusinessID:              input.BookingRequest.BusinessID,
			ResourceID:              input.BookingRequest.ResourceID,
			Date:                    input.BookingRequest.Date,
			ServiceID:               input.BookingRequest.ServiceID,
			SelectedOptions:         input.BookingRequest.SelectedOptions,
			ExplicitDurationMinutes: input.BookingRequest.ExplicitDurationMinutes,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve availability: %w", err)
		}
		return &models.BookingResponse{Availability: slots}, nil
	}

	// PHASE 2: confirm a previously held slot. The service re-validates
	// against fresh data before promoting the hold.
	if input.Confirm {
		if input.SessionID == "" {
			return nil, fmt.Errorf("sessionID required to confirm a booking")
		}
		resp, err := r.BookingService.Confirm(ctx, input.SessionID)
		if err != nil {
			if conflict, ok := booking.AsConflict(err); ok {
				logger.Warn("held slot taken before confirmation",
					zap.String("sessionID", input.SessionID))
				return &models.BookingResponse{
					SessionID: input.SessionID,
					Conflict:  &conflict.Conflict,
				}, nil
			}
			logger.Error("booking confirmation failed", zap.Error(err))
			return nil, fmt.Errorf("booking confirmation failed: %w", err)
		}
		return resp, nil
	}

	// PHASE 3: hold the chosen slot.
	resp, err := r.BookingService.Hold(ctx, input.BookingRequest)
	if err != nil {
		if conflict, ok := booking.AsConflict(err); ok {
			return &models.BookingResponse{Conflict: &conflict.Conflict}, nil
		}
		logger.Error("booking hold failed", zap.Error(err))
		return nil, fmt.Errorf("booking hold failed: %w", err)
	}
	return resp, nil
}
