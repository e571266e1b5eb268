package availability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tribook/models"
	"tribook/utils"
)

func confirmed(id, resourceID, date string, start, duration int) models.Reservation {
	return models.Reservation{
		ID:         id,
		BusinessID: "biz-1",
		ResourceID: resourceID,
		Date:       date,
		Start:      start,
		Duration:   &duration,
		Status:     models.StatusConfirmed,
	}
}

func TestBuildBusyIntervalsFiltersStatusAndDay(t *testing.T) {
	cancelled := confirmed("r2", "chair-1", "2026-09-01", 600, 60)
	cancelled.Status = models.StatusCancelled
	noShow := confirmed("r3", "chair-1", "2026-09-01", 660, 30)
	noShow.Status = models.StatusNoShow
	pending := confirmed("r4", "chair-1", "2026-09-01", 720, 30)
	pending.Status = models.StatusPending

	reservations := []models.Reservation{
		confirmed("r1", "chair-1", "2026-09-01", 540, 30),
		cancelled,
		noShow,
		pending,
		confirmed("r5", "chair-1", "2026-09-02", 540, 30), // other day
	}

	busy, err := BuildBusyIntervals("chair-1", "2026-09-01", reservations)
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{{Start: 540, End: 570}, {Start: 720, End: 750}}, busy)
}

func TestBuildBusyIntervalsResourceScope(t *testing.T) {
	reservations := []models.Reservation{
		confirmed("r1", "chair-1", "2026-09-01", 540, 30),
		confirmed("r2", "chair-2", "2026-09-01", 600, 30),
	}

	scoped, err := BuildBusyIntervals("chair-1", "2026-09-01", reservations)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	// Empty resource keeps every booking of the business.
	all, err := BuildBusyIntervals("", "2026-09-01", reservations)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBuildBusyIntervalsStoredDateWithTimeTail(t *testing.T) {
	r := confirmed("r1", "chair-1", "2026-09-01", 540, 30)
	r.Date = "2026-09-01T14:00:00Z"

	busy, err := BuildBusyIntervals("chair-1", "2026-09-01", []models.Reservation{r})
	require.NoError(t, err)
	assert.Len(t, busy, 1)
}

func TestBuildBusyIntervalsLegacyClockStart(t *testing.T) {
	r := confirmed("r1", "chair-1", "2026-09-01", 0, 45)
	r.StartClock = "10:15"

	busy, err := BuildBusyIntervals("chair-1", "2026-09-01", []models.Reservation{r})
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{{Start: 615, End: 660}}, busy)
}

func TestBuildBusyIntervalsMalformedClock(t *testing.T) {
	r := confirmed("r1", "chair-1", "2026-09-01", 0, 45)
	r.StartClock = "25:61"

	_, err := BuildBusyIntervals("chair-1", "2026-09-01", []models.Reservation{r})
	require.Error(t, err)
	var mte *utils.MalformedTimeError
	assert.True(t, errors.As(err, &mte))
}

func TestReservationDurationFallbacks(t *testing.T) {
	withDuration := confirmed("r1", "chair-1", "2026-09-01", 540, 45)
	assert.Equal(t, 45, reservationDuration(&withDuration))

	negative := confirmed("r2", "chair-1", "2026-09-01", 540, -10)
	assert.Equal(t, 0, reservationDuration(&negative))

	viaService := models.Reservation{
		Status: models.StatusConfirmed,
		Service: &models.ServiceRef{
			ID:      "svc-1",
			Service: &models.ServiceDefinition{BaseDurationMinutes: 90},
		},
	}
	assert.Equal(t, 90, reservationDuration(&viaService))

	unresolved := models.Reservation{
		Status:  models.StatusConfirmed,
		Service: &models.ServiceRef{ID: "svc-gone"},
	}
	assert.Equal(t, DefaultDurationMinutes, reservationDuration(&unresolved))

	bare := models.Reservation{Status: models.StatusConfirmed}
	assert.Equal(t, DefaultDurationMinutes, reservationDuration(&bare))
}
