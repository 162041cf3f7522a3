package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressClock_Linear(t *testing.T) {
	c := NewProgressClock(1000, Linear)
	assert.Equal(t, 0.0, c.Advance(0))
	assert.Equal(t, 0.25, c.Advance(250))
	assert.Equal(t, 1.0, c.Advance(1000))
}

func TestProgressClock_ClampsElapsed(t *testing.T) {
	c := NewProgressClock(1000, Linear)
	assert.Equal(t, 0.0, c.Advance(-50), "negative elapsed reads as the start")

	c = NewProgressClock(1000, Linear)
	assert.Equal(t, 1.0, c.Advance(4000), "elapsed past run time saturates")
}

func TestProgressClock_ZeroRunTime(t *testing.T) {
	// An instantaneous animation is complete immediately; no division
	// by the run time may happen.
	c := NewProgressClock(0, Linear)
	assert.Equal(t, 1.0, c.Advance(0))
}

func TestProgressClock_NeverRegresses(t *testing.T) {
	c := NewProgressClock(1000, Linear)
	assert.Equal(t, 0.8, c.Advance(800))
	assert.Equal(t, 0.8, c.Advance(400), "an earlier elapsed time cannot pull progress back")
	assert.Equal(t, 0.8, c.Current())
}

func TestProgressClock_AppliesRateFunction(t *testing.T) {
	c := NewProgressClock(1000, Smooth)
	assert.Equal(t, 0.0, c.Advance(0))
	assert.InDelta(t, 0.5, c.Advance(500), 1e-9)
	assert.Equal(t, 1.0, c.Advance(1000))
}

func TestProgressClock_NilRateDefaultsToSmooth(t *testing.T) {
	c := NewProgressClock(1000, nil)
	assert.Equal(t, 1.0, c.Advance(1000))
}
