package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
)

func TestSimulation_TutorialKill(t *testing.T) {
	state := createTestState()
	sim := createTestSimulation(state, testRNG(), nil)
	lv := sim.Level()
	// aim at the tutorial enemy
	lv.Camera = &pointCamera{target: mgl64.Vec3{-10, 0, -10}}

	res, err := sim.Tick(aimInput(), testDT)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Spawned)
	assert.Empty(t, res.Events, "spawned after the light stage")
	require.Equal(t, 1, lv.World.EnemyCount())
	tutorial := lv.World.EnemyIDs()[0]

	var litTicks, events int
	for i := 0; i < 1200 && res.Kills == 0; i++ {
		res, err = sim.Tick(aimInput(), testDT)
		require.NoError(t, err)
		events += len(res.Events)
		if e, ok := lv.World.Enemies[tutorial]; ok && e.Lit.Any() {
			litTicks++
		}
	}

	require.Equal(t, 1, res.Kills, "the tutorial enemy burned")
	assert.Equal(t, 1, state.KillsThisNight)
	assert.Equal(t, 1, state.TotalKills)
	assert.False(t, lv.World.Exists(tutorial))
	assert.Equal(t, 1, events, "lit once and never flickered")
	assert.LessOrEqual(t, litTicks, 240)
	assert.False(t, res.Defeated)

	// the spawner runs after the burn in the same tick
	target := sim.spawner.Target(state.SurvivedSeconds)
	assert.Equal(t, target, res.Spawned)
	assert.Equal(t, target, lv.World.EnemyCount())

	snap := sim.Snapshot()
	assert.Equal(t, 1, snap.Night)
	assert.Equal(t, 1, snap.KillsThisNight)
	assert.Equal(t, target, snap.Enemies)
	assert.Greater(t, snap.HealthRatio, 0.0)
}

func TestSimulation_MissingPlayer(t *testing.T) {
	sim := createTestSimulation(postTutorial(), testRNG(), nil)
	lv := sim.Level()
	lv.World.DestroyEntity(lv.World.Player.ID)

	for i := 0; i < MaxMissingTicks; i++ {
		_, err := sim.Tick(aimInput(), testDT)
		require.NoError(t, err, "tick %d", i)
	}
	_, err := sim.Tick(aimInput(), testDT)
	assert.ErrorIs(t, err, ErrMissingEntity)

	assert.Zero(t, lv.World.EnemyCount(), "spawner skipped without a player")
	assert.InDelta(t, float64(MaxMissingTicks+1)*testDT, lv.State.SurvivedSeconds, 1e-12, "other stages still ran")
}

func TestSimulation_Deterministic(t *testing.T) {
	run := func() ([]mgl64.Vec3, Snapshot) {
		sim := createTestSimulation(postTutorial(), testRNG(), mirrorLevel(-6))
		in := aimInput()
		in.Move = mgl64.Vec2{0.5, -1}
		for i := 0; i < 300; i++ {
			in.ToggleCursed = i == 100 || i == 200 || i == 250
			_, err := sim.Tick(in, testDT)
			require.NoError(t, err)
		}
		lv := sim.Level()
		var positions []mgl64.Vec3
		for _, id := range lv.World.EnemyIDs() {
			positions = append(positions, pose(lv, lv.World.Enemies[id].Body).Translation)
		}
		positions = append(positions, pose(lv, lv.World.Player.Body).Translation)
		return positions, sim.Snapshot()
	}

	a, snapA := run()
	b, snapB := run()
	assert.Equal(t, a, b)
	assert.Equal(t, snapA, snapB)
	assert.True(t, snapA.Cursed)
}

func TestSimulation_Sunrise(t *testing.T) {
	tuning := config.Default()
	tuning.Night.SunriseSeconds = 1
	sim := NewSimulation(Options{
		Tuning: tuning,
		State:  postTutorial(),
		RNG:    testRNG(),
		Camera: &pointCamera{target: mgl64.Vec3{0, 0, -10}},
		Logger: logging.Nop(),
	})

	sunrises := 0
	for i := 0; i < 90; i++ {
		res, err := sim.Tick(InputState{}, testDT)
		require.NoError(t, err)
		if res.Sunrise {
			sunrises++
		}
	}
	assert.Equal(t, 1, sunrises)
}

func TestSimulation_FlashlightUpgrade(t *testing.T) {
	state := postTutorial()
	sim := createTestSimulation(state, testRNG(), nil)
	p := sim.Level().World.Player

	state.Flashlight.Angle = 0.55
	state.Flashlight.Range = 8
	_, err := sim.Tick(InputState{}, testDT)
	require.NoError(t, err)

	assert.Equal(t, 0.55, p.Spotlight.OuterAngle)
	assert.InDelta(t, 0.45, p.Spotlight.InnerAngle, 1e-12)
	assert.Equal(t, 8.0, p.Spotlight.Range)
	assert.Equal(t, 8.0, p.Upper.Range)
}

func TestSimulation_Defaults(t *testing.T) {
	sim := NewSimulation(Options{Logger: logging.Nop()})

	snap := sim.Snapshot()
	assert.Equal(t, 1, snap.Night)
	assert.Equal(t, 1.0, snap.HealthRatio)
	assert.False(t, snap.Cursed)
	assert.False(t, snap.BeamVisible)

	// without a camera only the aim stage is skipped
	_, err := sim.Tick(InputState{Move: mgl64.Vec2{1, 0}}, testDT)
	require.NoError(t, err)
	assert.Equal(t, 1, sim.Snapshot().Enemies)
}
