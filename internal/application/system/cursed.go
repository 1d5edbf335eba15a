package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/random"
	"github.com/younwookim/nightlight/internal/physics"
)

// CursedControls distorts movement and aim while enabled.
type CursedControls struct {
	Enabled   bool
	SpeedMul  float64
	Invert    mgl64.Vec2
	Skew      mgl64.Vec2
	Swirl     float64
	AimRotate float64
	Wobble    float64
	WobbleHz  float64
	Lag       float64
	Jitter    float64
}

// DefaultCursedControls is the disabled starting curse.
func DefaultCursedControls() CursedControls {
	return CursedControls{
		SpeedMul:  1.8,
		Invert:    mgl64.Vec2{-1, 1},
		Skew:      mgl64.Vec2{0.65, -0.35},
		Swirl:     0.35,
		AimRotate: 0.9,
		Wobble:    0.35,
		WobbleHz:  1.7,
		Lag:       0.12,
		Jitter:    1.0,
	}
}

// CursedAimState is the smoothed aim direction. Zero means "snap".
type CursedAimState struct {
	Current mgl64.Vec3
}

// CursedSystem owns the curse parameters and applies them to the
// controller's input.
type CursedSystem struct {
	cfg config.CursedConfig
	rng random.Source
	log zerolog.Logger

	Controls CursedControls
	Aim      CursedAimState
}

// NewCursedSystem creates a disabled curse.
func NewCursedSystem(cfg config.CursedConfig, rng random.Source, log zerolog.Logger) *CursedSystem {
	return &CursedSystem{
		cfg:      cfg,
		rng:      rng,
		log:      log,
		Controls: DefaultCursedControls(),
	}
}

// Update toggles the curse when the toggle input fired this tick.
func (s *CursedSystem) Update(toggle bool) {
	if toggle {
		s.Toggle()
	}
}

// Toggle flips the curse. Enabling re-rolls every parameter and resets the
// smoothed aim; disabling only flips the flag.
func (s *CursedSystem) Toggle() {
	s.Controls.Enabled = !s.Controls.Enabled
	if !s.Controls.Enabled {
		s.log.Info().Bool("enabled", false).Msg("cursed controls")
		return
	}

	c := &s.Controls
	c.SpeedMul = s.draw(s.cfg.SpeedMul)
	c.Invert = mgl64.Vec2{s.sign(), s.sign()}
	c.Skew = mgl64.Vec2{s.draw(s.cfg.Skew), s.draw(s.cfg.Skew)}
	c.Swirl = s.draw(s.cfg.Swirl)
	c.AimRotate = s.draw(s.cfg.AimRotate)
	c.Wobble = s.draw(s.cfg.Wobble)
	c.WobbleHz = s.draw(s.cfg.WobbleHz)
	c.Lag = s.draw(s.cfg.Lag)
	c.Jitter = s.draw(s.cfg.Jitter)
	s.Aim = CursedAimState{}

	s.log.Info().
		Bool("enabled", true).
		Float64("speedMul", c.SpeedMul).
		Floats64("invert", c.Invert[:]).
		Floats64("skew", c.Skew[:]).
		Float64("swirl", c.Swirl).
		Float64("aimRotate", c.AimRotate).
		Float64("wobble", c.Wobble).
		Float64("wobbleHz", c.WobbleHz).
		Float64("lag", c.Lag).
		Float64("jitter", c.Jitter).
		Msg("cursed controls")
}

func (s *CursedSystem) draw(span config.Span) float64 {
	return s.rng.Float64Range(span.Min, span.Max)
}

func (s *CursedSystem) sign() float64 {
	if s.rng.Bool(s.cfg.InvertChance) {
		return -1
	}
	return 1
}

// Steer distorts a movement axis: invert and skew the axes, add a swirl
// that drifts with time t, then scale.
func (s *CursedSystem) Steer(in mgl64.Vec2, t float64) mgl64.Vec2 {
	c := s.Controls
	x := in.X()*c.Invert.X() + in.Y()*c.Skew.X()
	y := in.Y()*c.Invert.Y() + in.X()*c.Skew.Y()
	swirl := mgl64.Vec2{math.Sin(t * 2.3), math.Cos(t * 1.9)}.Mul(c.Swirl)
	return mgl64.Vec2{x, y}.Add(swirl).Mul(c.SpeedMul)
}

// AimTarget rotates target around the player by the curse angle and
// occasionally jitters it.
func (s *CursedSystem) AimTarget(player, target mgl64.Vec3, t float64) mgl64.Vec3 {
	c := s.Controls
	angle := c.AimRotate + math.Sin(t*c.WobbleHz*2*math.Pi)*c.Wobble
	offset := mgl64.QuatRotate(angle, physics.AxisUp).Rotate(target.Sub(player))
	target = player.Add(offset)

	if s.rng.Bool(s.cfg.JitterChance) {
		jx := s.rng.Float64Range(-c.Jitter, c.Jitter)
		jz := s.rng.Float64Range(-c.Jitter, c.Jitter)
		target = target.Add(mgl64.Vec3{jx, 0, jz})
	}
	return target
}

// Smooth eases the aim toward desired. The first call after a reset snaps.
func (s *CursedSystem) Smooth(desired mgl64.Vec3, dt float64) mgl64.Vec3 {
	if s.Aim.Current == (mgl64.Vec3{}) {
		s.Aim.Current = desired
		return desired
	}
	alpha := mgl64.Clamp(s.Controls.Lag*60*dt, s.cfg.AlphaMin, s.cfg.AlphaMax)
	cur := s.Aim.Current
	s.Aim.Current = physics.NormalizeOrZero(cur.Add(desired.Sub(cur).Mul(alpha)))
	return s.Aim.Current
}

// Reset clears the smoothed aim.
func (s *CursedSystem) Reset() {
	s.Aim = CursedAimState{}
}
