package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

// SpawnerSystem keeps the enemy population at its time-based target.
type SpawnerSystem struct {
	level *Level
	cfg   config.SpawnerConfig
	log   zerolog.Logger
}

// NewSpawnerSystem creates a spawner.
func NewSpawnerSystem(level *Level, cfg config.SpawnerConfig, log zerolog.Logger) *SpawnerSystem {
	return &SpawnerSystem{level: level, cfg: cfg, log: log}
}

// Target is the population wanted after elapsed seconds of the night.
func (s *SpawnerSystem) Target(elapsed float64) int {
	if s.cfg.SecondsPerExtra <= 0 {
		return s.cfg.BasePopulation
	}
	return s.cfg.BasePopulation + int(math.Floor(elapsed/s.cfg.SecondsPerExtra))
}

// Update tops up the population and returns how many enemies it spawned.
// Surplus enemies are never removed.
func (s *SpawnerSystem) Update() (int, error) {
	_, pose, err := s.level.player()
	if err != nil {
		return 0, err
	}

	w := s.level.World
	state := s.level.State
	if state.IsTutorial() {
		if w.EnemyCount() > 0 {
			return 0, nil
		}
		tc := s.cfg.Tutorial
		e := s.level.SpawnEnemy(tc.Position.Vec(), tc.Speed, tc.Health, tc.Variant)
		s.log.Debug().Uint32("enemy", uint32(e.ID)).Msg("tutorial enemy spawned")
		return 1, nil
	}

	elapsed := state.SurvivedSeconds
	missing := s.Target(elapsed) - w.EnemyCount()
	if missing <= 0 {
		return 0, nil
	}

	rng := s.level.RNG
	maxHealth := s.cfg.HealthBase + elapsed/s.cfg.SecondsPerExtra
	back := pose.Back()
	baseAngle := math.Atan2(back.Z(), back.X())
	height := s.level.Tuning.Enemy.SpawnHeight

	for i := 0; i < missing; i++ {
		// draw order is fixed: health, angle, radius, speed, variant
		health := rng.Float64Range(s.cfg.HealthMin, maxHealth)
		theta := baseAngle + rng.Float64Range(-math.Pi, math.Pi)
		radius := rng.Float64Range(s.cfg.Radius.Min, s.cfg.Radius.Max)
		speed := rng.Float64Range(s.cfg.Speed.Min, s.cfg.Speed.Max)
		variant := rng.IntRange(1, s.cfg.Variants+1)

		pos := mgl64.Vec3{
			pose.Translation.X() + radius*math.Cos(theta),
			height,
			pose.Translation.Z() + radius*math.Sin(theta),
		}
		s.level.SpawnEnemy(pos, speed, health, variant)
	}

	s.log.Debug().
		Int("spawned", missing).
		Int("population", w.EnemyCount()).
		Float64("elapsed", elapsed).
		Msg("enemies spawned")
	return missing, nil
}
