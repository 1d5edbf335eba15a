package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/ecs"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
	"github.com/younwookim/nightlight/internal/infrastructure/random"
	"github.com/younwookim/nightlight/internal/physics"
)

// MaxMissingTicks is how many consecutive ticks a stage may be skipped for a
// missing singleton before Tick fails.
const MaxMissingTicks = 3

// TickResult is what happened during one tick.
type TickResult struct {
	Events   []LightEvent
	Kills    int
	Spawned  int
	Defeated bool
	Sunrise  bool
}

// Snapshot is the read-only view the HUD draws from.
type Snapshot struct {
	Night           int
	SurvivedSeconds float64
	KillsThisNight  int
	HealthRatio     float64
	Feedback        Feedback
	Enemies         int
	Cursed          bool
	BeamVisible     bool
}

// follower is a camera that tracks the player.
type follower interface {
	Follow(target mgl64.Vec3, dt float64)
}

// Options configures a Simulation.
type Options struct {
	Tuning *config.Tuning
	Level  *config.Level
	State  *progress.GameState
	RNG    random.Source
	Camera Camera
	// Physics defaults to a fresh physics.World.
	Physics Backend
	Logger  zerolog.Logger
}

type stage struct {
	name string
	run  func(in InputState, dt float64) error
}

// Simulation runs one night as a fixed, ordered list of stages.
type Simulation struct {
	level *Level
	log   zerolog.Logger

	clock      *ClockSystem
	cursed     *CursedSystem
	controller *ControllerSystem
	mirror     *MirrorSystem
	light      *LightSystem
	enemies    *EnemySystem
	damage     *DamageSystem
	spawner    *SpawnerSystem

	stages       []stage
	result       TickResult
	missingTicks int
}

// NewSimulation builds a level: the player at the level spawn, its mirrors,
// and the torch if one was bought.
func NewSimulation(opts Options) *Simulation {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.Default()
	}
	lvlCfg := opts.Level
	if lvlCfg == nil {
		lvlCfg = config.DefaultLevel()
	}
	backend := opts.Physics
	if backend == nil {
		backend = physics.NewWorld()
	}
	state := opts.State
	if state == nil {
		fc := tuning.Flashlight
		state = progress.New(progress.Flashlight{Angle: fc.Angle, Range: fc.Range, Intensity: fc.Intensity})
	}
	rng := opts.RNG
	if rng == nil {
		rng = random.New(0)
	}

	lv := &Level{
		World:   ecs.NewWorld(),
		Physics: backend,
		State:   state,
		Tuning:  tuning,
		RNG:     rng,
		Camera:  opts.Camera,
	}
	log := logging.Component(opts.Logger, "simulation")

	s := &Simulation{
		level:   lv,
		log:     log,
		clock:   NewClockSystem(lv, tuning.Night.SunriseSeconds),
		cursed:  NewCursedSystem(tuning.Cursed, rng, logging.Component(opts.Logger, "cursed")),
		mirror:  NewMirrorSystem(lv, tuning.Mirror),
		light:   NewLightSystem(lv),
		enemies: NewEnemySystem(lv, tuning.Enemy, logging.Component(opts.Logger, "enemy")),
		damage:  NewDamageSystem(lv, tuning.Damage, tuning.Feedback, logging.Component(opts.Logger, "damage")),
		spawner: NewSpawnerSystem(lv, tuning.Spawner, logging.Component(opts.Logger, "spawner")),
	}
	s.controller = NewControllerSystem(lv, s.cursed)

	lv.SpawnPlayer(lvlCfg.PlayerSpawn.Vec())
	for _, m := range lvlCfg.Mirrors {
		lv.SpawnMirror(m)
	}
	if t := lv.State.Torch; t != nil {
		lv.SpawnTorch(lvlCfg.TorchPosition.Vec(), *t)
	}

	s.stages = []stage{
		{"clock", s.tickClock},
		{"cursed", s.tickCursed},
		{"movement", s.tickMovement},
		{"aim", s.controller.Aim},
		{"flashlight", s.tickFlashlight},
		{"mirror", s.tickMirror},
		{"light", s.tickLight},
		{"camera", s.tickCamera},
		{"steer", s.tickSteer},
		{"burn", s.tickBurn},
		{"damage", s.tickDamage},
		{"spawner", s.tickSpawner},
		{"physics", s.tickPhysics},
	}

	log.Info().
		Str("level", lvlCfg.ID).
		Int("night", lv.State.Night).
		Int("mirrors", len(lvlCfg.Mirrors)).
		Bool("torch", lv.State.Torch != nil).
		Msg("night started")
	return s
}

// Tick advances the night by dt. Stages run in order and each sees the
// results of the ones before it.
func (s *Simulation) Tick(in InputState, dt float64) (TickResult, error) {
	s.result = TickResult{}

	var missing error
	for _, st := range s.stages {
		err := st.run(in, dt)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrMissingEntity) {
			return s.result, fmt.Errorf("stage %s: %w", st.name, err)
		}
		if missing == nil {
			missing = fmt.Errorf("stage %s: %w", st.name, err)
		}
	}

	if missing == nil {
		s.missingTicks = 0
		return s.result, nil
	}

	s.missingTicks++
	s.log.Warn().Err(missing).Int("ticks", s.missingTicks).Msg("stage skipped")
	if s.missingTicks > MaxMissingTicks {
		return s.result, missing
	}
	return s.result, nil
}

func (s *Simulation) tickClock(_ InputState, dt float64) error {
	if s.clock.Update(dt) {
		s.result.Sunrise = true
		s.log.Info().Int("night", s.level.State.Night).Msg("sunrise")
	}
	return nil
}

func (s *Simulation) tickCursed(in InputState, _ float64) error {
	s.cursed.Update(in.ToggleCursed)
	return nil
}

func (s *Simulation) tickMovement(in InputState, dt float64) error {
	return s.controller.Move(in.Move, dt)
}

func (s *Simulation) tickFlashlight(InputState, float64) error {
	p, _, err := s.level.player()
	if err != nil {
		return err
	}
	s.level.applyFlashlight(p)
	return nil
}

func (s *Simulation) tickMirror(InputState, float64) error {
	return s.mirror.Update()
}

func (s *Simulation) tickLight(InputState, float64) error {
	events, err := s.light.Update()
	s.result.Events = events
	return err
}

func (s *Simulation) tickCamera(_ InputState, dt float64) error {
	f, ok := s.level.Camera.(follower)
	if !ok {
		return nil
	}
	_, pose, err := s.level.player()
	if err != nil {
		return err
	}
	f.Follow(pose.Translation, dt)
	return nil
}

func (s *Simulation) tickSteer(InputState, float64) error {
	return s.enemies.Steer()
}

func (s *Simulation) tickBurn(_ InputState, dt float64) error {
	s.result.Kills = s.enemies.Burn(dt)
	return nil
}

func (s *Simulation) tickDamage(_ InputState, dt float64) error {
	defeated, err := s.damage.Update(dt)
	s.result.Defeated = defeated
	return err
}

func (s *Simulation) tickSpawner(InputState, float64) error {
	n, err := s.spawner.Update()
	s.result.Spawned = n
	return err
}

func (s *Simulation) tickPhysics(_ InputState, dt float64) error {
	s.level.Physics.Step(dt)
	return nil
}

// Snapshot returns the values the HUD shows.
func (s *Simulation) Snapshot() Snapshot {
	lv := s.level
	snap := Snapshot{
		Night:           lv.State.Night,
		SurvivedSeconds: lv.State.SurvivedSeconds,
		KillsThisNight:  lv.State.KillsThisNight,
		Feedback:        s.damage.Feedback,
		Enemies:         lv.World.EnemyCount(),
		Cursed:          s.cursed.Controls.Enabled,
		BeamVisible:     lv.World.Beam.Visible,
	}
	if p := lv.World.Player; p != nil {
		snap.HealthRatio = p.HealthRatio()
	}
	return snap
}

// Level exposes the shared level state for drawing and tests.
func (s *Simulation) Level() *Level {
	return s.level
}

// Cursed exposes the curse for the HUD and tests.
func (s *Simulation) Cursed() *CursedSystem {
	return s.cursed
}

// Lights exposes the light detector so callers can hook OnLightChange.
func (s *Simulation) Lights() *LightSystem {
	return s.light
}
