// Package physics is the small rigid-body world the night simulation runs
// on: kinematic and dynamic boxes on a flat floor, static mirrors, ray casts
// and shape overlap queries. Bodies move in the XZ plane; Y is up.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon below which a direction is treated as degenerate.
const Epsilon = 1e-9

var (
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisForward = mgl64.Vec3{0, 0, -1}
	AxisBack    = mgl64.Vec3{0, 0, 1}
)

// Transform is a body pose.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// Identity returns a transform at p with no rotation.
func Identity(p mgl64.Vec3) Transform {
	return Transform{Translation: p, Rotation: mgl64.QuatIdent()}
}

// Forward is the local -Z axis in world space.
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(AxisForward)
}

// Back is the local +Z axis in world space.
func (t Transform) Back() mgl64.Vec3 {
	return t.Rotation.Rotate(AxisBack)
}

// Point maps a local offset to world space.
func (t Transform) Point(local mgl64.Vec3) mgl64.Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(local))
}

// NormalizeOrZero returns v normalized, or the zero vector when v is too
// short to have a direction.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal drops the Y component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// YawToward returns the rotation about Y that points local -Z along the
// horizontal part of dir. ok is false when dir has no horizontal extent.
func YawToward(dir mgl64.Vec3) (q mgl64.Quat, ok bool) {
	h := Horizontal(dir)
	if h.LenSqr() <= Epsilon {
		return mgl64.QuatIdent(), false
	}
	yaw := math.Atan2(-h.X(), -h.Z())
	return mgl64.QuatRotate(yaw, AxisUp), true
}

// LookTo returns the rotation that points local -Z along dir.
func LookTo(dir mgl64.Vec3) (mgl64.Quat, bool) {
	d := NormalizeOrZero(dir)
	if d == (mgl64.Vec3{}) {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatBetweenVectors(AxisForward, d), true
}

// Reflect mirrors d about the plane with normal n and normalizes the result.
func Reflect(d, n mgl64.Vec3) mgl64.Vec3 {
	n = NormalizeOrZero(n)
	return NormalizeOrZero(d.Sub(n.Mul(2 * d.Dot(n))))
}
