package system

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

// Feedback is the screen treatment derived from player health.
type Feedback struct {
	Vignette   float64
	Brightness float64
}

// DamageSystem hurts the player near enemies and reports defeat.
type DamageSystem struct {
	level    *Level
	cfg      config.DamageConfig
	feedback config.FeedbackConfig
	log      zerolog.Logger

	defeated bool
	Feedback Feedback
}

// NewDamageSystem creates a damage system.
func NewDamageSystem(level *Level, cfg config.DamageConfig, fb config.FeedbackConfig, log zerolog.Logger) *DamageSystem {
	s := &DamageSystem{level: level, cfg: cfg, feedback: fb, log: log}
	s.Feedback = ComputeFeedback(fb, 1, true)
	return s
}

// Falloff is the damage per second dealt by one enemy at distance d.
func Falloff(d, radius, maxPerSecond float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	k := 1 - math.Max(d, 0)/radius
	return maxPerSecond * k * k
}

// ComputeFeedback maps a health ratio to vignette strength and brightness.
func ComputeFeedback(cfg config.FeedbackConfig, ratio float64, alive bool) Feedback {
	r := math.Max(0, math.Min(ratio, 1))
	loss := (1 - r) * (1 - r)
	fb := Feedback{
		Vignette:   cfg.VignetteBase + cfg.VignetteGain*loss,
		Brightness: cfg.BrightnessBase - cfg.BrightnessDrop*loss,
	}
	if !alive {
		fb.Brightness = 0
	}
	return fb
}

// Update applies this tick's damage. It returns true exactly once per
// depletion of the player's health.
func (s *DamageSystem) Update(dt float64) (bool, error) {
	p, pose, err := s.level.player()
	if err != nil {
		return false, err
	}

	total := 0.0
	w := s.level.World
	for _, id := range w.EnemyIDs() {
		ep, ok := s.level.Physics.Transform(w.Enemies[id].Body)
		if !ok {
			continue
		}
		d := ep.Translation.Sub(pose.Translation).Len()
		total += Falloff(d, s.cfg.Radius, s.cfg.MaxPerSecond) * dt
	}

	depleted := p.TakeDamage(total)
	s.Feedback = ComputeFeedback(s.feedback, p.HealthRatio(), p.IsAlive())

	if !depleted {
		s.defeated = false
		return false, nil
	}
	if s.defeated {
		return false, nil
	}
	s.defeated = true
	s.log.Info().
		Int("night", s.level.State.Night).
		Float64("survived", s.level.State.SurvivedSeconds).
		Int("kills", s.level.State.KillsThisNight).
		Msg("player defeated")
	return true, nil
}
