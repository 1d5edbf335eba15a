package system

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/nightlight/internal/domain/entity"
)

func TestSpawner_Target(t *testing.T) {
	sim := createTestSimulation(postTutorial(), testRNG(), nil)

	assert.Equal(t, 10, sim.spawner.Target(0))
	assert.Equal(t, 10, sim.spawner.Target(4.9))
	assert.Equal(t, 11, sim.spawner.Target(5))
	assert.Equal(t, 15, sim.spawner.Target(25))
}

func TestSpawner_FillsPopulation(t *testing.T) {
	state := postTutorial()
	state.SurvivedSeconds = 25
	sim := createTestSimulation(state, testRNG(), nil)
	lv := sim.Level()

	n, err := sim.spawner.Update()
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, 15, lv.World.EnemyCount())

	for _, id := range lv.World.EnemyIDs() {
		e := lv.World.Enemies[id]
		p := pose(lv, e.Body).Translation
		r := math.Hypot(p.X(), p.Z())
		assert.GreaterOrEqual(t, r, 12.0-1e-9)
		assert.Less(t, r, 20.0)
		assert.Equal(t, 1.0, p.Y())
		assert.GreaterOrEqual(t, e.Health, 5.0)
		assert.Less(t, e.Health, 15.0)
		assert.GreaterOrEqual(t, e.Speed, 1.0)
		assert.Less(t, e.Speed, 4.0)
		assert.GreaterOrEqual(t, e.Visual.Variant, 1)
		assert.LessOrEqual(t, e.Visual.Variant, 5)
		assert.InDelta(t, entity.DefaultSizeCurve.Size(e.Health), e.Visual.Scale, 1e-12)
	}

	t.Run("full population spawns nothing", func(t *testing.T) {
		n, err := sim.spawner.Update()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("surplus is kept", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			lv.SpawnEnemy(mgl64.Vec3{30, 1, float64(i * 3)}, 1, 10, 1)
		}
		n, err := sim.spawner.Update()
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 20, lv.World.EnemyCount())
	})
}

func TestSpawner_DrawOrder(t *testing.T) {
	rng := &scriptedRNG{}
	sim := createTestSimulation(postTutorial(), rng, nil)
	lv := sim.Level()

	n, err := sim.spawner.Update()
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Len(t, rng.calls, 50)

	pi := fmt.Sprintf("%g", math.Pi)
	assert.Equal(t, []string{
		"float[5,10)",
		"float[-" + pi + "," + pi + ")",
		"float[12,20)",
		"float[1,4)",
		"int[1,6)",
	}, rng.calls[:5])

	// mid-range draws put the enemy straight behind the player
	first := lv.World.Enemies[lv.World.EnemyIDs()[0]]
	p := pose(lv, first.Body).Translation
	assertVec3Near(t, mgl64.Vec3{0, 1, 16}, p, 1e-9, "got %v", p)
	assert.InDelta(t, 7.5, first.Health, 1e-12)
	assert.InDelta(t, 2.5, first.Speed, 1e-12)
	assert.Equal(t, 3, first.Visual.Variant)
}

func TestSpawner_Tutorial(t *testing.T) {
	rng := &scriptedRNG{}
	sim := createTestSimulation(createTestState(), rng, nil)
	lv := sim.Level()

	n, err := sim.spawner.Update()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, rng.calls, "the tutorial enemy is fixed")

	e := lv.World.Enemies[lv.World.EnemyIDs()[0]]
	assert.Equal(t, mgl64.Vec3{-10, 1, -10}, pose(lv, e.Body).Translation)
	assert.Equal(t, 60.0, e.Health)
	assert.Equal(t, 3.0, e.Speed)
	assert.Equal(t, 5, e.Visual.Variant)
	assert.InDelta(t, 0.3+0.7*math.Sqrt(0.6), e.Visual.Scale, 1e-12)

	n, err = sim.spawner.Update()
	require.NoError(t, err)
	assert.Zero(t, n, "only one tutorial enemy at a time")

	t.Run("general spawning after the first kill", func(t *testing.T) {
		lv.State.RecordKill()
		lv.Despawn(e)
		n, err := sim.spawner.Update()
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("missing player", func(t *testing.T) {
		lv.World.DestroyEntity(lv.World.Player.ID)
		_, err := sim.spawner.Update()
		assert.ErrorIs(t, err, ErrMissingEntity)
	})
}
