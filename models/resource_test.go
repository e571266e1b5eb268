package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureDefaultHours(t *testing.T) {
	saved := DefaultBusinessHours
	defer func() { DefaultBusinessHours = saved }()

	ConfigureDefaultHours(480, 1200)
	assert.Equal(t, BusinessHours{OpenMinutes: 480, CloseMinutes: 1200}, DefaultBusinessHours)

	// Invalid windows leave the current default untouched.
	ConfigureDefaultHours(600, 600)
	assert.Equal(t, BusinessHours{OpenMinutes: 480, CloseMinutes: 1200}, DefaultBusinessHours)
	ConfigureDefaultHours(-10, 600)
	assert.Equal(t, BusinessHours{OpenMinutes: 480, CloseMinutes: 1200}, DefaultBusinessHours)
	ConfigureDefaultHours(700, 600)
	assert.Equal(t, BusinessHours{OpenMinutes: 480, CloseMinutes: 1200}, DefaultBusinessHours)
}

func TestEffectiveHours(t *testing.T) {
	var nilResource *Resource
	assert.Equal(t, DefaultBusinessHours, nilResource.EffectiveHours())

	plain := &Resource{ID: "chair-1"}
	assert.Equal(t, DefaultBusinessHours, plain.EffectiveHours())

	override := &Resource{ID: "spa-1", Hours: &BusinessHours{OpenMinutes: 600, CloseMinutes: 720}}
	assert.Equal(t, BusinessHours{OpenMinutes: 600, CloseMinutes: 720}, override.EffectiveHours())
}
