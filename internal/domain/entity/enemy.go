package entity

import (
	"math"

	"github.com/younwookim/nightlight/internal/physics"
)

// SizeCurve maps health to visual scale: Min + (1-Min)*sqrt(clamp(h/Reference, 0, 1)).
type SizeCurve struct {
	Min       float64
	Reference float64
}

// DefaultSizeCurve scales from 0.3 at zero health to 1.0 at 100.
var DefaultSizeCurve = SizeCurve{Min: 0.3, Reference: 100}

// Size returns the visual scale for health h.
func (c SizeCurve) Size(h float64) float64 {
	if c.Reference <= 0 {
		return 1
	}
	ratio := math.Max(0, math.Min(h/c.Reference, 1))
	return c.Min + (1-c.Min)*math.Sqrt(ratio)
}

// Enemy is a light-averse creature chasing the player.
type Enemy struct {
	ID     EntityID
	Body   physics.Handle
	Speed  float64
	Health float64
	Lit    LightFlags

	// Owned sub-objects
	Visual    Visual
	SpotLamp  Lamp
	TorchLamp Lamp
}

// NewEnemy creates an enemy sized for its health.
func NewEnemy(id EntityID, body physics.Handle, speed, health float64, variant int, curve SizeCurve) *Enemy {
	return &Enemy{
		ID:     id,
		Body:   body,
		Speed:  speed,
		Health: health,
		Visual: Visual{
			Scale:   curve.Size(health),
			Variant: variant,
		},
	}
}

// Drain removes health, clamped at zero, and rescales the visual.
// Returns true when the enemy is out of health.
func (e *Enemy) Drain(amount float64, curve SizeCurve) bool {
	if amount > 0 {
		e.Health = math.Max(0, e.Health-amount)
		e.Visual.Scale = curve.Size(e.Health)
	}
	return !e.IsAlive()
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// Suppressed reports whether any light holds the enemy in place.
func (e *Enemy) Suppressed() bool {
	return e.Lit.Any()
}
