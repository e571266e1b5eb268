package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	catalogRepo "tribook/database/repository/catalog"
	reservationRepo "tribook/database/repository/reservation"
	resourceRepo "tribook/database/repository/resource"
	"tribook/models"
	"tribook/services/availability"
	"tribook/services/tasks"
	"tribook/utils"
)

// ExpiryScheduler is the slice of the asynq client the hold flow needs;
// *asynq.Client satisfies it.
type ExpiryScheduler interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService implements the hold → confirm workflow on top of
// the availability engine, the reservation store and the session store.
type DefaultBookingService struct {
	Availability    availability.AvailabilityService
	ReservationRepo reservationRepo.ReservationRepository
	CatalogRepo     catalogRepo.CatalogRepository
	ResourceRepo    resourceRepo.ResourceRepository // nil checks hours against the default window
	Sessions        SessionStore
	HoldQueue       ExpiryScheduler // nil disables scheduled expiry
	HoldTTL         time.Duration   // 0 means utils.SessionCacheTTL
}

func (s *DefaultBookingService) holdTTL() time.Duration {
	if s.HoldTTL > 0 {
		return s.HoldTTL
	}
	return utils.SessionCacheTTL
}

// Hold validates the requested slot against fresh data, persists a
// pending reservation transactionally and opens a session for the
// confirmation step. The pending record blocks the interval for other
// clients until it is confirmed, cancelled or expired.
func (s *DefaultBookingService) Hold(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	reservation, duration, err := s.buildReservation(ctx, req, models.StatusPending)
	if err != nil {
		return nil, err
	}

	if err := s.createValidated(ctx, reservation); err != nil {
		return nil, err
	}

	now := time.Now()
	session := models.BookingSession{
		SessionID:     uuid.New().String(),
		ReservationID: reservation.ID,
		Request:       req,
		Duration:      duration,
		Proposed:      models.IntervalAt(req.Start, duration),
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.holdTTL()),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		// The pending record must not outlive a hold nobody can confirm.
		s.releaseHold(ctx, reservation.ID)
		return nil, err
	}

	if err := s.scheduleExpiry(session); err != nil {
		// Without the expiry task the pending record would block its slot
		// indefinitely; the session TTL only expires the session key.
		s.releaseHold(ctx, reservation.ID)
		s.Sessions.Drop(ctx, session.SessionID)
		return nil, err
	}

	logger.Info("booking hold created",
		zap.String("sessionID", session.SessionID),
		zap.String("reservationID", reservation.ID),
		zap.String("resourceID", req.ResourceID),
		zap.String("date", req.Date),
		zap.Int("start", req.Start),
		zap.Int("duration", duration))

	return &models.BookingResponse{SessionID: session.SessionID, Booking: reservation}, nil
}

// Confirm promotes the held reservation. The slot is re-checked against
// data fetched in this call — never against the availability snapshot the
// client was shown — with the hold's own record excluded from the busy set.
func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.ReservationRepo.GetByID(ctx, session.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("held reservation vanished: %w", err)
	}
	if !reservation.Blocks() {
		s.Sessions.Drop(ctx, sessionID)
		return nil, ErrSessionNotFound
	}

	fresh, err := s.ReservationRepo.ListForDay(ctx, reservation.BusinessID, reservation.Date, reservation.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch reservations: %w", err)
	}
	if err := s.CatalogRepo.ResolveRefs(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to resolve service references: %w", err)
	}
	others := fresh[:0:0]
	for _, r := range fresh {
		if r.ID != reservation.ID {
			others = append(others, r)
		}
	}
	if err := validateAgainst(session.Proposed, reservation.ResourceID, reservation.Date, others); err != nil {
		return nil, err
	}

	if err := s.ReservationRepo.UpdateStatus(ctx, reservation.ID, models.StatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	reservation.Status = models.StatusConfirmed
	s.Sessions.Drop(ctx, sessionID)

	utils.GetLogger().Info("booking confirmed",
		zap.String("sessionID", sessionID),
		zap.String("reservationID", reservation.ID))

	return &models.BookingResponse{SessionID: sessionID, Booking: reservation}, nil
}

// Book is the one-shot path used when no hold phase is wanted: a single
// transactional validate-and-insert of a confirmed reservation.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	reservation, _, err := s.buildReservation(ctx, req, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if err := s.createValidated(ctx, reservation); err != nil {
		return nil, err
	}
	return &models.BookingResponse{Booking: reservation}, nil
}

// Cancel releases a reservation's interval.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string) error {
	return s.ReservationRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled)
}

// buildReservation resolves the effective duration and assembles the
// record to persist.
func (s *DefaultBookingService) buildReservation(ctx context.Context, req models.BookingRequest, status models.ReservationStatus) (*models.Reservation, int, error) {
	duration, err := s.Availability.EffectiveDuration(ctx, availability.Query{
		BusinessID:              req.BusinessID,
		ResourceID:              req.ResourceID,
		Date:                    req.Date,
		ServiceID:               req.ServiceID,
		SelectedOptions:         req.SelectedOptions,
		ExplicitDurationMinutes: req.ExplicitDurationMinutes,
	})
	if err != nil {
		return nil, 0, err
	}

	// The generator never offers a start outside the bookable window, so
	// a request carrying one is rejected rather than persisted.
	hours := models.DefaultBusinessHours
	if s.ResourceRepo != nil && req.ResourceID != "" {
		res, err := s.ResourceRepo.GetByID(ctx, req.ResourceID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load resource %s: %w", req.ResourceID, err)
		}
		hours = res.EffectiveHours()
	}
	if req.Start < hours.OpenMinutes || req.Start+duration > hours.CloseMinutes {
		return nil, 0, ErrOutsideBusinessHours
	}

	reservation := &models.Reservation{
		ID:         uuid.New().String(),
		BusinessID: req.BusinessID,
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		Date:       req.Date,
		Start:      req.Start,
		Duration:   &duration,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	if req.ServiceID != "" {
		reservation.Service = &models.ServiceRef{ID: req.ServiceID}
	}
	return reservation, duration, nil
}

// createValidated inserts the reservation through the transactional
// check-and-insert, re-validating against the reservations read inside
// the same transaction.
func (s *DefaultBookingService) createValidated(ctx context.Context, reservation *models.Reservation) error {
	proposed := models.IntervalAt(reservation.Start, *reservation.Duration)
	return s.ReservationRepo.CreateValidated(ctx, reservation, func(existing []models.Reservation) error {
		if err := s.CatalogRepo.ResolveRefs(ctx, existing); err != nil {
			return fmt.Errorf("failed to resolve service references: %w", err)
		}
		return validateAgainst(proposed, reservation.ResourceID, reservation.Date, existing)
	})
}

// validateAgainst rebuilds the busy set from the given reservations and
// runs the engine's proposed-booking validation.
func validateAgainst(proposed models.Interval, resourceID, date string, existing []models.Reservation) error {
	busy, err := availability.BuildBusyIntervals(resourceID, date, existing)
	if err != nil {
		return err
	}
	if ok, conflict := availability.ValidateProposedBooking(proposed, busy); !ok {
		return &ConflictError{Proposed: proposed, Conflict: *conflict}
	}
	return nil
}

// scheduleExpiry enqueues the asynq task that releases the hold when the
// window lapses. A hold without an expiry task would block its slot
// indefinitely, so a scheduling failure fails the hold.
func (s *DefaultBookingService) scheduleExpiry(session models.BookingSession) error {
	if s.HoldQueue == nil {
		return nil
	}
	task, opts, err := tasks.NewHoldExpireTask(tasks.HoldExpirePayload{
		ReservationID: session.ReservationID,
		SessionID:     session.SessionID,
	}, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to build hold expiry task: %w", err)
	}
	if _, err := s.HoldQueue.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to schedule hold expiry: %w", err)
	}
	return nil
}

// releaseHold cancels a just-created pending reservation whose hold
// cannot proceed.
func (s *DefaultBookingService) releaseHold(ctx context.Context, reservationID string) {
	if _, err := s.ReservationRepo.ExpireHold(ctx, reservationID); err != nil {
		utils.GetLogger().Error("failed to release orphaned hold",
			zap.String("reservationID", reservationID), zap.Error(err))
	}
}
