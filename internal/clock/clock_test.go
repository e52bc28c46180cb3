package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/estate-agency/internal/clock"
)

func TestConfigurePinsNowZone(t *testing.T) {
	defer clock.Configure(clock.DefaultTimezone)

	clock.Configure("America/New_York")
	assert.Equal(t, "America/New_York", clock.Now().Location().String())

	clock.Configure("not-a-zone")
	assert.Equal(t, clock.DefaultTimezone, clock.Now().Location().String())
}

func TestLocationFallsBackOnBadName(t *testing.T) {
	assert.Equal(t, clock.DefaultTimezone, clock.Location("").String())
	assert.Equal(t, "Europe/Warsaw", clock.Location("Europe/Warsaw").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, clock.IsValid("Europe/Kyiv"))
	assert.False(t, clock.IsValid(""))
	assert.False(t, clock.IsValid("Mars/Olympus"))
}
