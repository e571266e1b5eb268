package availability

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	catalogRepo "tribook/database/repository/catalog"
	reservationRepo "tribook/database/repository/reservation"
	resourceRepo "tribook/database/repository/resource"
	"tribook/models"
	"tribook/utils"
)

// DefaultAvailabilityEngine is the production slot classifier. It holds
// no state of its own — every call reads a fresh snapshot and returns a
// fresh verdict, so concurrent use needs no locking.
type DefaultAvailabilityEngine struct {
	ReservationRepo reservationRepo.ReservationRepository
	CatalogRepo     catalogRepo.CatalogRepository
	ResourceRepo    resourceRepo.ResourceRepository
	StepMinutes     int // 0 means DefaultStepMinutes
}

func (e *DefaultAvailabilityEngine) step() int {
	if e.StepMinutes > 0 {
		return e.StepMinutes
	}
	return DefaultStepMinutes
}

// EffectiveDuration resolves the minutes a booking described by q would
// occupy: explicit duration, else service base plus selected options,
// else the default.
func (e *DefaultAvailabilityEngine) EffectiveDuration(ctx context.Context, q Query) (int, error) {
	var service *models.ServiceDefinition
	if q.ServiceID != "" {
		def, err := e.CatalogRepo.GetByID(ctx, q.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return 0, err
			}
			return 0, fmt.Errorf("failed to load service %s: %w", q.ServiceID, err)
		}
		service = def
	}
	return ResolveDuration(service, q.SelectedOptions, q.ExplicitDurationMinutes, DefaultDurationMinutes), nil
}

// GetDaySlots classifies every candidate start of the resource's day.
// A day where nothing fits comes back with an empty slot list; the caller
// renders that as "no availability".
func (e *DefaultAvailabilityEngine) GetDaySlots(ctx context.Context, q Query) (*models.DaySlots, error) {
	logger := utils.GetLogger()

	duration, err := e.EffectiveDuration(ctx, q)
	if err != nil {
		return nil, err
	}

	hours := models.DefaultBusinessHours
	if q.ResourceID != "" {
		res, err := e.ResourceRepo.GetByID(ctx, q.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load resource %s: %w", q.ResourceID, err)
		}
		hours = res.EffectiveHours()
	}

	reservations, err := e.ReservationRepo.ListForDay(ctx, q.BusinessID, q.Date, q.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for %s on %s: %w", q.BusinessID, q.Date, err)
	}
	if err := e.CatalogRepo.ResolveRefs(ctx, reservations); err != nil {
		return nil, fmt.Errorf("failed to resolve service references: %w", err)
	}

	busy, err := BuildBusyIntervals(q.ResourceID, q.Date, reservations)
	if err != nil {
		return nil, err
	}

	candidates, err := GenerateSlotStarts(hours, duration, e.step())
	if err != nil {
		return nil, err
	}

	verdicts := ClassifySlots(candidates, busy, duration)

	logger.Debug("classified day slots",
		zap.String("businessID", q.BusinessID),
		zap.String("resourceID", q.ResourceID),
		zap.String("date", q.Date),
		zap.Int("duration", duration),
		zap.Int("candidates", len(candidates)),
		zap.Int("busy", len(busy)))

	return &models.DaySlots{
		BusinessID:      q.BusinessID,
		ResourceID:      q.ResourceID,
		Date:            q.Date,
		DurationMinutes: duration,
		Slots:           verdicts,
	}, nil
}
