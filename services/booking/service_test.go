package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tribook/models"
	"tribook/services/availability"
)

func intPtr(v int) *int { return &v }

// memReservationRepo is an in-memory ReservationRepository whose
// CreateValidated mirrors the transactional check-and-insert.
type memReservationRepo struct {
	reservations []models.Reservation
}

func (m *memReservationRepo) ListForDay(_ context.Context, businessID, date, resourceID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.reservations {
		if r.BusinessID != businessID || !r.Blocks() {
			continue
		}
		if resourceID != "" && r.ResourceID != resourceID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			r := m.reservations[i]
			return &r, nil
		}
	}
	return nil, assert.AnError
}

func (m *memReservationRepo) Create(_ context.Context, r *models.Reservation) error {
	m.reservations = append(m.reservations, *r)
	return nil
}

func (m *memReservationRepo) CreateValidated(ctx context.Context, r *models.Reservation, validate func([]models.Reservation) error) error {
	existing, err := m.ListForDay(ctx, r.BusinessID, r.Date, "")
	if err != nil {
		return err
	}
	if err := validate(existing); err != nil {
		return err
	}
	m.reservations = append(m.reservations, *r)
	return nil
}

func (m *memReservationRepo) UpdateStatus(_ context.Context, id string, status models.ReservationStatus) error {
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			m.reservations[i].Status = status
			return nil
		}
	}
	return assert.AnError
}

func (m *memReservationRepo) ExpireHold(_ context.Context, id string) (bool, error) {
	for i := range m.reservations {
		if m.reservations[i].ID == id && m.reservations[i].Status == models.StatusPending {
			m.reservations[i].Status = models.StatusCancelled
			return true, nil
		}
	}
	return false, nil
}

func (m *memReservationRepo) EnsureIndexes() error { return nil }

// memCatalogRepo resolves refs from a fixed catalogue.
type memCatalogRepo struct {
	services map[string]*models.ServiceDefinition
}

func (m *memCatalogRepo) GetByID(_ context.Context, id string) (*models.ServiceDefinition, error) {
	if svc, ok := m.services[id]; ok {
		return svc, nil
	}
	return nil, assert.AnError
}

func (m *memCatalogRepo) ListByBusiness(_ context.Context, _ string, _ models.Vertical) ([]models.ServiceDefinition, error) {
	return nil, nil
}

func (m *memCatalogRepo) ResolveRefs(_ context.Context, reservations []models.Reservation) error {
	for i := range reservations {
		ref := reservations[i].Service
		if ref == nil || ref.Resolved() {
			continue
		}
		if svc, ok := m.services[ref.ID]; ok {
			ref.Service = svc
		}
	}
	return nil
}

func (m *memCatalogRepo) EnsureIndexes() error { return nil }

// fixedDurationAvailability avoids pulling the full engine into these tests.
type fixedDurationAvailability struct {
	duration int
}

func (f *fixedDurationAvailability) GetDaySlots(_ context.Context, _ availability.Query) (*models.DaySlots, error) {
	return &models.DaySlots{}, nil
}

func (f *fixedDurationAvailability) EffectiveDuration(_ context.Context, q availability.Query) (int, error) {
	if q.ExplicitDurationMinutes != nil && *q.ExplicitDurationMinutes >= 0 {
		return *q.ExplicitDurationMinutes, nil
	}
	return f.duration, nil
}

// memSessionStore is an in-memory SessionStore.
type memSessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]models.BookingSession{}}
}

func (m *memSessionStore) Save(_ context.Context, session models.BookingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memSessionStore) Load(_ context.Context, sessionID string) (*models.BookingSession, error) {
	if session, ok := m.sessions[sessionID]; ok {
		return &session, nil
	}
	return nil, ErrSessionNotFound
}

func (m *memSessionStore) Drop(_ context.Context, sessionID string) {
	delete(m.sessions, sessionID)
}

// stubScheduler records enqueued expiry tasks or fails every enqueue.
type stubScheduler struct {
	enqueued int
	err      error
}

func (s *stubScheduler) Enqueue(_ *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.enqueued++
	return &asynq.TaskInfo{}, nil
}

func newTestBookingService(existing []models.Reservation) (*DefaultBookingService, *memReservationRepo) {
	repo := &memReservationRepo{reservations: existing}
	svc := &DefaultBookingService{
		Availability:    &fixedDurationAvailability{duration: 60},
		ReservationRepo: repo,
		CatalogRepo:     &memCatalogRepo{},
		Sessions:        newMemSessionStore(),
	}
	return svc, repo
}

func existingBooking(id string, start, duration int) models.Reservation {
	return models.Reservation{
		ID:         id,
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      start,
		Duration:   &duration,
		Status:     models.StatusConfirmed,
	}
}

func TestBookFreeSlot(t *testing.T) {
	svc, repo := newTestBookingService([]models.Reservation{
		existingBooking("r1", 540, 60),
	})

	resp, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600, // back-to-back with r1
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, models.StatusConfirmed, resp.Booking.Status)
	require.NotNil(t, resp.Booking.Duration)
	assert.Equal(t, 60, *resp.Booking.Duration)
	assert.Len(t, repo.reservations, 2)
}

func TestBookConflictingSlot(t *testing.T) {
	svc, repo := newTestBookingService([]models.Reservation{
		existingBooking("r1", 600, 60),
	})

	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      630,
	})
	require.Error(t, err)

	ce, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, models.Interval{Start: 630, End: 690}, ce.Proposed)
	assert.Equal(t, models.Interval{Start: 600, End: 660}, ce.Conflict.Busy)
	// Nothing was persisted.
	assert.Len(t, repo.reservations, 1)
}

func TestBookExplicitDurationConflict(t *testing.T) {
	svc, _ := newTestBookingService([]models.Reservation{
		existingBooking("r1", 660, 30),
	})

	// 600 + 90 minutes runs into the 11:00 booking.
	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID:              "biz-1",
		ResourceID:              "chair-1",
		Date:                    "2026-09-01",
		Start:                   600,
		ExplicitDurationMinutes: intPtr(90),
	})
	_, ok := AsConflict(err)
	assert.True(t, ok)

	// 60 minutes ends exactly as it begins.
	_, err = svc.Book(context.Background(), models.BookingRequest{
		BusinessID:              "biz-1",
		ResourceID:              "chair-1",
		Date:                    "2026-09-01",
		Start:                   600,
		ExplicitDurationMinutes: intPtr(60),
	})
	assert.NoError(t, err)
}

func TestBookValidatesAgainstFreshData(t *testing.T) {
	// The conflicting booking lands between slot display and submission:
	// the transactional re-read must still catch it.
	svc, repo := newTestBookingService(nil)

	taken := existingBooking("sniped", 600, 60)
	repo.reservations = append(repo.reservations, taken)

	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestBookIgnoresOtherResources(t *testing.T) {
	other := existingBooking("r1", 600, 60)
	other.ResourceID = "chair-2"
	svc, _ := newTestBookingService([]models.Reservation{other})

	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	assert.NoError(t, err)
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, repo := newTestBookingService([]models.Reservation{
		existingBooking("r1", 600, 60),
	})

	require.NoError(t, svc.Cancel(context.Background(), "r1"))
	assert.Equal(t, models.StatusCancelled, repo.reservations[0].Status)

	// The slot is bookable again.
	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	assert.NoError(t, err)
}

func TestValidateAgainstResolvesServiceDurations(t *testing.T) {
	// A stored record without its own duration blocks by its service base.
	legacy := models.Reservation{
		ID:         "r-legacy",
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
		Status:     models.StatusConfirmed,
		Service:    &models.ServiceRef{ID: "svc-spa"},
	}
	repo := &memReservationRepo{reservations: []models.Reservation{legacy}}
	svc := &DefaultBookingService{
		Availability:    &fixedDurationAvailability{duration: 30},
		ReservationRepo: repo,
		CatalogRepo: &memCatalogRepo{services: map[string]*models.ServiceDefinition{
			"svc-spa": {ID: "svc-spa", BaseDurationMinutes: 90},
		}},
	}

	// 11:00 start sits inside the spa session's resolved 10:00-11:30 block.
	_, err := svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      660,
	})
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestHoldThenConfirm(t *testing.T) {
	svc, repo := newTestBookingService(nil)
	scheduler := &stubScheduler{}
	svc.HoldQueue = scheduler
	store := svc.Sessions.(*memSessionStore)

	resp, err := svc.Hold(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, models.StatusPending, resp.Booking.Status)
	assert.Equal(t, 1, scheduler.enqueued)
	assert.Len(t, store.sessions, 1)

	// The pending hold blocks the slot for everyone else.
	_, err = svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      630,
	})
	_, ok := AsConflict(err)
	assert.True(t, ok)

	confirmed, err := svc.Confirm(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Booking.Status)
	assert.Equal(t, models.StatusConfirmed, repo.reservations[0].Status)
	assert.Empty(t, store.sessions)

	// A confirmed session cannot be replayed.
	_, err = svc.Confirm(context.Background(), resp.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestHoldReleasedWhenExpirySchedulingFails(t *testing.T) {
	svc, repo := newTestBookingService(nil)
	svc.HoldQueue = &stubScheduler{err: errors.New("queue down")}
	store := svc.Sessions.(*memSessionStore)

	_, err := svc.Hold(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	require.Error(t, err)

	// The pending record was released and the session dropped, so the
	// slot is immediately bookable again.
	require.Len(t, repo.reservations, 1)
	assert.Equal(t, models.StatusCancelled, repo.reservations[0].Status)
	assert.Empty(t, store.sessions)

	_, err = svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	assert.NoError(t, err)
}

func TestConfirmFailsWhenHoldExpired(t *testing.T) {
	svc, repo := newTestBookingService(nil)
	store := svc.Sessions.(*memSessionStore)

	resp, err := svc.Hold(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      600,
	})
	require.NoError(t, err)

	// The expiry worker released the hold before the client confirmed.
	released, err := repo.ExpireHold(context.Background(), resp.Booking.ID)
	require.NoError(t, err)
	require.True(t, released)

	_, err = svc.Confirm(context.Background(), resp.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, store.sessions)
}

func TestHoldRejectsOutsideBusinessHours(t *testing.T) {
	svc, repo := newTestBookingService(nil)

	// 1:40 AM is before the default 9:00 open.
	_, err := svc.Hold(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      100,
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 17:30 + 60 minutes runs past the 18:00 close.
	_, err = svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      1050,
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Empty(t, repo.reservations)

	// The last start that keeps the booking inside the window is fine.
	_, err = svc.Book(context.Background(), models.BookingRequest{
		BusinessID: "biz-1",
		ResourceID: "chair-1",
		Date:       "2026-09-01",
		Start:      1020,
	})
	assert.NoError(t, err)
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{
		Proposed: models.Interval{Start: 600, End: 660},
		Conflict: models.BookingConflict{Index: 0, Busy: models.Interval{Start: 630, End: 690}},
	}
	assert.Contains(t, err.Error(), "10:00 AM - 11:00 AM")
	assert.Contains(t, err.Error(), "10:30 AM - 11:30 AM")
}
