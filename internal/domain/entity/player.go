package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/physics"
)

// Spotlight is a cone light attached to a parent body.
type Spotlight struct {
	// Offset and Rotation are relative to the parent.
	Offset     mgl64.Vec3
	Rotation   mgl64.Quat
	InnerAngle float64
	OuterAngle float64
	Range      float64
	Intensity  float64
	Visible    bool
}

// Pose returns the light's world pose given its parent's.
func (s Spotlight) Pose(parent physics.Transform) physics.Transform {
	rot := s.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	return physics.Transform{
		Translation: parent.Point(s.Offset),
		Rotation:    parent.Rotation.Mul(rot),
	}
}

// Player is the survivor carrying the flashlight.
type Player struct {
	ID        EntityID
	Body      physics.Handle
	Speed     float64
	Health    float64
	MaxHealth float64

	// Spotlight is the flashlight cone that burns enemies.
	Spotlight Spotlight
	Upper     Spotlight
	Fill      Spotlight
	Visual    Visual
}

// NewPlayer creates a player at full health.
func NewPlayer(id EntityID, body physics.Handle, speed, maxHealth float64) *Player {
	return &Player{
		ID:        id,
		Body:      body,
		Speed:     speed,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Visual:    Visual{Scale: 1},
	}
}

// TakeDamage applies damage, clamping health at zero.
// Returns true if the player is out of health.
func (p *Player) TakeDamage(amount float64) bool {
	if amount > 0 {
		p.Health = math.Max(0, p.Health-amount)
	}
	return !p.IsAlive()
}

// HealthRatio returns health as a fraction of max, clamped to [0, 1].
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(p.Health/p.MaxHealth, 1))
}

// IsAlive returns true if the player has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// AimFlashlight applies the current flashlight settings to both forward
// cones. The inner angle trails the outer by gap.
func (p *Player) AimFlashlight(angle, rng, intensity, gap float64) {
	for _, s := range []*Spotlight{&p.Spotlight, &p.Upper} {
		s.OuterAngle = angle
		s.InnerAngle = math.Max(0, angle-gap)
		s.Range = rng
		s.Intensity = intensity
	}
}
