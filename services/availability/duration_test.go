package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tribook/models"
)

func intPtr(v int) *int { return &v }

func haircutService() *models.ServiceDefinition {
	return &models.ServiceDefinition{
		ID:                  "svc-haircut",
		BusinessID:          "biz-1",
		Vertical:            models.VerticalSalon,
		Name:                "Haircut",
		BaseDurationMinutes: 30,
		BasePrice:           25,
		Options: []models.ServiceOption{
			{Name: "coloring", DurationImpactMinutes: 60, PriceImpact: 40},
			{Name: "wash", DurationImpactMinutes: 15, PriceImpact: 5},
			{Name: "express", DurationImpactMinutes: -10, PriceImpact: 10},
		},
	}
}

func TestResolveDurationExplicitWins(t *testing.T) {
	svc := haircutService()
	assert.Equal(t, 45, ResolveDuration(svc, []string{"coloring"}, intPtr(45), DefaultDurationMinutes))
	assert.Equal(t, 0, ResolveDuration(svc, nil, intPtr(0), DefaultDurationMinutes))
}

func TestResolveDurationServiceChain(t *testing.T) {
	svc := haircutService()

	assert.Equal(t, 30, ResolveDuration(svc, nil, nil, DefaultDurationMinutes))
	assert.Equal(t, 90, ResolveDuration(svc, []string{"coloring"}, nil, DefaultDurationMinutes))
	assert.Equal(t, 105, ResolveDuration(svc, []string{"coloring", "wash"}, nil, DefaultDurationMinutes))
	assert.Equal(t, 20, ResolveDuration(svc, []string{"express"}, nil, DefaultDurationMinutes))
}

func TestResolveDurationUnknownOptionsIgnored(t *testing.T) {
	svc := haircutService()
	assert.Equal(t, 30, ResolveDuration(svc, []string{"no-such-option"}, nil, DefaultDurationMinutes))
	assert.Equal(t, 90, ResolveDuration(svc, []string{"coloring", "no-such-option"}, nil, DefaultDurationMinutes))
}

func TestResolveDurationClampsAtZero(t *testing.T) {
	svc := &models.ServiceDefinition{
		BaseDurationMinutes: 15,
		Options: []models.ServiceOption{
			{Name: "shrink", DurationImpactMinutes: -45},
		},
	}
	assert.Equal(t, 0, ResolveDuration(svc, []string{"shrink"}, nil, DefaultDurationMinutes))
}

func TestResolveDurationFallback(t *testing.T) {
	assert.Equal(t, DefaultDurationMinutes, ResolveDuration(nil, nil, nil, DefaultDurationMinutes))
	// A negative explicit duration does not count as explicit.
	assert.Equal(t, DefaultDurationMinutes, ResolveDuration(nil, nil, intPtr(-5), DefaultDurationMinutes))
}

// Adding an option with a non-negative impact never shortens the booking.
func TestResolveDurationOptionMonotonicity(t *testing.T) {
	svc := haircutService()
	base := ResolveDuration(svc, []string{"wash"}, nil, DefaultDurationMinutes)
	withMore := ResolveDuration(svc, []string{"wash", "coloring"}, nil, DefaultDurationMinutes)
	assert.GreaterOrEqual(t, withMore, base)
}

func TestOptionPrice(t *testing.T) {
	svc := haircutService()
	assert.Equal(t, 25.0, OptionPrice(svc, nil))
	assert.Equal(t, 70.0, OptionPrice(svc, []string{"coloring", "no-such-option"}))
	assert.Equal(t, 0.0, OptionPrice(nil, []string{"coloring"}))
}
