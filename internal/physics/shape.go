package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind enumerates the supported collider shapes.
type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
	ShapeBall
	ShapeCone
)

// Shape is a convex collider shape centered on its body.
//
// A cone's axis is local Y with the apex at +HalfHeight and the base disk of
// the given Radius at -HalfHeight.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3
	Radius      float64
	HalfHeight  float64
}

func Cuboid(hx, hy, hz float64) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: mgl64.Vec3{hx, hy, hz}}
}

func Ball(r float64) Shape {
	return Shape{Kind: ShapeBall, Radius: r}
}

func Cone(halfHeight, radius float64) Shape {
	return Shape{Kind: ShapeCone, HalfHeight: halfHeight, Radius: radius}
}

// Volume is used to derive mass at unit density.
func (s Shape) Volume() float64 {
	switch s.Kind {
	case ShapeCuboid:
		return 8 * s.HalfExtents.X() * s.HalfExtents.Y() * s.HalfExtents.Z()
	case ShapeBall:
		return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
	case ShapeCone:
		return math.Pi * s.Radius * s.Radius * 2 * s.HalfHeight / 3
	}
	return 0
}

// aabb returns the world-space bounds of s at pose t.
func (s Shape) aabb(t Transform) (lo, hi mgl64.Vec3) {
	var ext mgl64.Vec3
	switch s.Kind {
	case ShapeCuboid:
		m := t.Rotation.Mat4().Mat3()
		for i := 0; i < 3; i++ {
			ext[i] = math.Abs(m.At(i, 0))*s.HalfExtents[0] +
				math.Abs(m.At(i, 1))*s.HalfExtents[1] +
				math.Abs(m.At(i, 2))*s.HalfExtents[2]
		}
	case ShapeBall:
		ext = mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	case ShapeCone:
		// The base rim is the farthest point from the center.
		r := math.Hypot(s.Radius, s.HalfHeight)
		ext = mgl64.Vec3{r, r, r}
	}
	return t.Translation.Sub(ext), t.Translation.Add(ext)
}

// minExtent is the thinnest half dimension, used for CCD sub-stepping.
func (s Shape) minExtent() float64 {
	switch s.Kind {
	case ShapeCuboid:
		return math.Min(s.HalfExtents[0], math.Min(s.HalfExtents[1], s.HalfExtents[2]))
	case ShapeBall:
		return s.Radius
	default:
		return math.Min(s.Radius, s.HalfHeight)
	}
}

// closestPoint returns the point of the solid shape at pose t nearest to p.
func (s Shape) closestPoint(t Transform, p mgl64.Vec3) mgl64.Vec3 {
	switch s.Kind {
	case ShapeCuboid:
		inv := t.Rotation.Inverse()
		local := inv.Rotate(p.Sub(t.Translation))
		for i := 0; i < 3; i++ {
			local[i] = mgl64.Clamp(local[i], -s.HalfExtents[i], s.HalfExtents[i])
		}
		return t.Point(local)
	case ShapeBall:
		d := p.Sub(t.Translation)
		if d.Len() <= s.Radius {
			return p
		}
		return t.Translation.Add(NormalizeOrZero(d).Mul(s.Radius))
	default:
		if s.contains(t, p) {
			return p
		}
		return t.Translation
	}
}

// contains reports whether p lies inside the solid shape at pose t.
func (s Shape) contains(t Transform, p mgl64.Vec3) bool {
	const tol = 1e-9
	local := t.Rotation.Inverse().Rotate(p.Sub(t.Translation))
	switch s.Kind {
	case ShapeCuboid:
		for i := 0; i < 3; i++ {
			if math.Abs(local[i]) > s.HalfExtents[i]+tol {
				return false
			}
		}
		return true
	case ShapeBall:
		return local.Len() <= s.Radius+tol
	case ShapeCone:
		if s.HalfHeight <= 0 {
			return false
		}
		depth := s.HalfHeight - local.Y()
		if depth < -tol || depth > 2*s.HalfHeight+tol {
			return false
		}
		allowed := s.Radius * depth / (2 * s.HalfHeight)
		return math.Hypot(local.X(), local.Z()) <= allowed+tol
	}
	return false
}
