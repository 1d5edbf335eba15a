package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

func testShop() *Shop {
	return NewShop(config.Default().Shop)
}

func richState(kills int) *GameState {
	g := testState()
	g.TotalKills = kills
	return g
}

func TestShop_RejectsUnaffordable(t *testing.T) {
	s := testShop()
	g := richState(44)

	assert.False(t, s.Buy(g, FlashlightAngle))
	assert.Equal(t, 0.35, g.Flashlight.Angle)
	assert.Zero(t, g.Spent)
}

func TestShop_FlashlightAngle(t *testing.T) {
	s := testShop()
	g := richState(1000)

	bought := 0
	for s.Buy(g, FlashlightAngle) {
		bought++
	}

	// 0.35 rad grows by 0.1 until the full cone reaches 97 degrees
	assert.Equal(t, 5, bought)
	assert.InDelta(t, 0.85, g.Flashlight.Angle, 1e-9)
	assert.Equal(t, 5*45, g.Spent)
	assert.True(t, s.Maxed(g, FlashlightAngle))
}

func TestShop_FlashlightRange(t *testing.T) {
	s := testShop()
	g := richState(1000)

	for s.Buy(g, FlashlightRange) {
	}
	assert.Equal(t, 10.0, g.Flashlight.Range)
	assert.Equal(t, 4*45, g.Spent)
}

func TestShop_Torch(t *testing.T) {
	s := testShop()
	g := richState(99)

	t.Run("upgrades need a torch", func(t *testing.T) {
		g.TotalKills = 1000
		assert.False(t, s.Buy(g, TorchRange))
		assert.False(t, s.Buy(g, TorchOnSeconds))
		assert.False(t, s.Buy(g, TorchOffSeconds))
		assert.Zero(t, g.Spent)
		g.TotalKills = 99
	})

	t.Run("torch costs 100", func(t *testing.T) {
		assert.False(t, s.Buy(g, BuyTorch))
		g.TotalKills = 100
		require.True(t, s.Buy(g, BuyTorch))
		assert.Equal(t, &Torch{Range: 5, OnSeconds: 2, OffSeconds: 2}, g.Torch)
		assert.Equal(t, 0, g.Currency())
	})

	t.Run("only one torch", func(t *testing.T) {
		g.TotalKills = 10000
		assert.False(t, s.Buy(g, BuyTorch))
	})

	t.Run("range capped at 10", func(t *testing.T) {
		for s.Buy(g, TorchRange) {
		}
		assert.Equal(t, 10.0, g.Torch.Range)
	})

	t.Run("cooldown floor", func(t *testing.T) {
		n := 0
		for s.Buy(g, TorchOffSeconds) {
			n++
		}
		assert.LessOrEqual(t, g.Torch.OffSeconds, 0.3+1e-9)
		assert.Greater(t, g.Torch.OffSeconds, 0.15)
		assert.Equal(t, 17, n)
	})

	t.Run("duration uncapped", func(t *testing.T) {
		before := g.Torch.OnSeconds
		assert.True(t, s.Buy(g, TorchOnSeconds))
		assert.Equal(t, before+1, g.Torch.OnSeconds)
	})

	assert.LessOrEqual(t, g.Spent, g.TotalKills)
}

func TestShop_Offers(t *testing.T) {
	s := testShop()
	g := richState(50)

	offers := s.Offers(g)
	require.Len(t, offers, len(Purchases))

	assert.Equal(t, "Angle: 40 degrees", offers[0].Label)
	assert.True(t, offers[0].Available)
	assert.True(t, offers[2].Visible)
	assert.False(t, offers[2].Available, "torch is too expensive")
	assert.False(t, offers[3].Visible, "torch upgrades hidden without a torch")
	assert.Equal(t, 100, offers[2].Cost)
}
