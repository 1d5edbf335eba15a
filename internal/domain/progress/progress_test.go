package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testState() *GameState {
	return New(Flashlight{Angle: 0.35, Range: 6, Intensity: 500000})
}

func TestGameState_KillAccounting(t *testing.T) {
	g := testState()
	assert.Equal(t, 1, g.Night)
	assert.True(t, g.IsTutorial())

	g.RecordKill()
	g.RecordKill()
	assert.Equal(t, 2, g.KillsThisNight)
	assert.Equal(t, 2, g.TotalKills)
	assert.Equal(t, 2, g.Currency())
	assert.False(t, g.IsTutorial())
}

func TestGameState_NextNight(t *testing.T) {
	g := testState()
	g.RecordKill()
	g.Advance(12.5)
	g.Spent = 1

	g.NextNight()

	assert.Equal(t, 2, g.Night)
	assert.Zero(t, g.KillsThisNight)
	assert.Zero(t, g.SurvivedSeconds)
	assert.Equal(t, 1, g.TotalKills, "run totals survive the night")
	assert.Equal(t, 0, g.Currency())
	assert.False(t, g.IsTutorial(), "only night 1 has the tutorial")
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{61, "01:01"},
		{150, "02:30"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.seconds))
	}
}

func TestGameState_Clone(t *testing.T) {
	g := testState()
	g.Torch = &Torch{Range: 5, OnSeconds: 2, OffSeconds: 2}
	g.RecordKill()

	c := g.Clone()
	assert.Equal(t, g, c)

	c.Torch.Range = 9
	c.Flashlight.Angle = 1
	c.RecordKill()
	assert.Equal(t, 5.0, g.Torch.Range)
	assert.Equal(t, 0.35, g.Flashlight.Angle)
	assert.Equal(t, 1, g.TotalKills)

	t.Run("without torch", func(t *testing.T) {
		assert.Nil(t, testState().Clone().Torch)
	})
}
