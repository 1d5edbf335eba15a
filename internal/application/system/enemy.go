package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/physics"
)

// EnemySystem steers enemies toward the player and burns lit ones.
type EnemySystem struct {
	level *Level
	cfg   config.EnemyConfig
	log   zerolog.Logger
}

// NewEnemySystem creates an enemy system.
func NewEnemySystem(level *Level, cfg config.EnemyConfig, log zerolog.Logger) *EnemySystem {
	return &EnemySystem{level: level, cfg: cfg, log: log}
}

// Steer faces every enemy toward the player and sets its chase force.
// Lit enemies get no force and coast to a stop under damping.
func (s *EnemySystem) Steer() error {
	_, pose, err := s.level.player()
	if err != nil {
		return err
	}
	target := pose.Translation

	w := s.level.World
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		ep, ok := s.level.Physics.Transform(e.Body)
		if !ok {
			continue
		}

		toPlayer := target.Sub(ep.Translation)
		if rot, ok := physics.YawToward(toPlayer); ok {
			s.level.Physics.SetRotation(e.Body, rot)
		}

		if e.Suppressed() {
			s.level.Physics.SetExternalForce(e.Body, mgl64.Vec3{})
			continue
		}

		dir := physics.Horizontal(toPlayer)
		if dir.LenSqr() <= s.cfg.MinSteerSq {
			s.level.Physics.SetExternalForce(e.Body, mgl64.Vec3{})
			continue
		}
		s.level.Physics.SetExternalForce(e.Body, ChaseForce(dir, e.Speed, s.level.Physics.LinearVelocity(e.Body), s.cfg.ChaseGain))
	}
	return nil
}

// ChaseForce steers velocity toward dir at speed with a proportional gain.
// The vertical component is always zero.
func ChaseForce(dir mgl64.Vec3, speed float64, vel mgl64.Vec3, gain float64) mgl64.Vec3 {
	desired := physics.NormalizeOrZero(physics.Horizontal(dir)).Mul(speed)
	f := desired.Sub(vel).Mul(gain)
	f[1] = 0
	return f
}

// Burn drains lit enemies and removes the dead ones. Returns the number of
// kills this tick.
func (s *EnemySystem) Burn(dt float64) int {
	w := s.level.World
	curve := s.level.SizeCurve()
	drain := s.cfg.DrainPerSecond * dt

	kills := 0
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		if !e.Lit.Any() {
			continue
		}
		// one drain per tick however many lights overlap
		if !e.Drain(drain, curve) {
			continue
		}

		s.level.State.RecordKill()
		s.level.Despawn(e)
		kills++
		s.log.Debug().
			Uint32("enemy", uint32(id)).
			Int("killsThisNight", s.level.State.KillsThisNight).
			Int("totalKills", s.level.State.TotalKills).
			Msg("enemy burned")
	}
	return kills
}
