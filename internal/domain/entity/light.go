package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/physics"
)

// ReflectedBeam is the spotlight bounced off a mirror. It is recomputed
// every tick and hidden whenever the source ray misses.
type ReflectedBeam struct {
	Pose       physics.Transform
	InnerAngle float64
	OuterAngle float64
	Range      float64
	Intensity  float64
	Visible    bool
}

// Hide turns the beam off, keeping its last pose.
func (b *ReflectedBeam) Hide() {
	b.Visible = false
}

// Forward is the beam direction.
func (b *ReflectedBeam) Forward() mgl64.Vec3 {
	return b.Pose.Forward()
}

// Mirror is a static reflective box.
type Mirror struct {
	ID          EntityID
	Body        physics.Handle
	Pose        physics.Transform
	HalfExtents mgl64.Vec3
	// Normal is the reflective face in local space.
	Normal mgl64.Vec3
}

// WorldNormal returns the reflective normal in world space.
func (m *Mirror) WorldNormal() mgl64.Vec3 {
	return physics.NormalizeOrZero(m.Pose.Rotation.Rotate(m.Normal))
}

// Torch is a stationary light that blinks on a fixed duty cycle.
type Torch struct {
	ID         EntityID
	Position   mgl64.Vec3
	Range      float64
	OnSeconds  float64
	OffSeconds float64
}

// Lit reports whether the torch is burning t seconds into the night.
func (t *Torch) Lit(at float64) bool {
	if t.OffSeconds <= 0 {
		return true
	}
	if t.OnSeconds <= 0 {
		return false
	}
	period := t.OnSeconds + t.OffSeconds
	return math.Mod(math.Max(0, at), period) < t.OnSeconds
}

// Reaches reports whether p is within the torch's range.
func (t *Torch) Reaches(p mgl64.Vec3) bool {
	return p.Sub(t.Position).Len() <= t.Range
}
