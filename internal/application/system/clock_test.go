package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	lv := &Level{State: createTestState()}
	c := NewClockSystem(lv, 0.5)

	assert.False(t, c.Update(0.25))
	assert.True(t, c.Update(0.25))
	assert.False(t, c.Update(0.25), "sunrise fires once")
	assert.InDelta(t, 0.75, lv.State.SurvivedSeconds, 1e-12)
	assert.InDelta(t, 0.75, lv.Elapsed, 1e-12)

	t.Run("elapsed survives a new night", func(t *testing.T) {
		lv.State.NextNight()
		c.Update(0.25)
		assert.InDelta(t, 0.25, lv.State.SurvivedSeconds, 1e-12)
		assert.InDelta(t, 1.0, lv.Elapsed, 1e-12)
	})

	t.Run("no sunrise", func(t *testing.T) {
		never := NewClockSystem(&Level{State: createTestState()}, 0)
		for i := 0; i < 10; i++ {
			assert.False(t, never.Update(100))
		}
	})
}
