package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// coneSamples is the number of axis points probed by cone overlap tests.
const coneSamples = 9

// QueryFilter restricts which colliders a query sees.
type QueryFilter struct {
	Groups         CollisionGroups
	ExcludeSensors bool
	Exclude        Handle
}

// DefaultFilter sees every non-sensor collider.
func DefaultFilter() QueryFilter {
	return QueryFilter{Groups: DefaultGroups(), ExcludeSensors: true}
}

func (f QueryFilter) accepts(b *body) bool {
	if f.Exclude != 0 && b.handle == f.Exclude {
		return false
	}
	if f.ExcludeSensors && b.desc.Sensor {
		return false
	}
	groups := f.Groups
	if groups == (CollisionGroups{}) {
		groups = DefaultGroups()
	}
	return groups.Test(b.desc.Groups)
}

// RayHit is the closest ray intersection.
type RayHit struct {
	Handle Handle
	// Toi is the hit distance in multiples of the ray direction.
	Toi    float64
	Normal mgl64.Vec3
}

// Point returns origin + dir*Toi.
func (h RayHit) Point(origin, dir mgl64.Vec3) mgl64.Vec3 {
	return origin.Add(dir.Mul(h.Toi))
}

// CastRay returns the closest collider hit by the ray within maxToi. With
// solid set, a ray starting inside a collider hits it at Toi 0.
func (w *World) CastRay(origin, dir mgl64.Vec3, maxToi float64, solid bool, filter QueryFilter) (RayHit, bool) {
	best := RayHit{Toi: math.Inf(1)}
	found := false
	for _, h := range w.order {
		b := w.bodies[h]
		if !filter.accepts(b) {
			continue
		}
		toi, normal, ok := castShape(b.desc.Shape, b.pose, origin, dir, solid)
		if !ok || toi > maxToi || toi >= best.Toi {
			continue
		}
		best = RayHit{Handle: h, Toi: toi, Normal: normal}
		found = true
	}
	return best, found
}

// IntersectShape calls visit for every collider overlapping shape at the
// given pose. Returning false from visit stops the query.
func (w *World) IntersectShape(pos mgl64.Vec3, rot mgl64.Quat, shape Shape, filter QueryFilter, visit func(Handle) bool) {
	pose := Transform{Translation: pos, Rotation: rot}
	for _, h := range w.order {
		b := w.bodies[h]
		if !filter.accepts(b) {
			continue
		}
		if overlaps(shape, pose, b.desc.Shape, b.pose) && !visit(h) {
			return
		}
	}
}

func castShape(s Shape, t Transform, origin, dir mgl64.Vec3, solid bool) (float64, mgl64.Vec3, bool) {
	inv := t.Rotation.Inverse()
	o := inv.Rotate(origin.Sub(t.Translation))
	d := inv.Rotate(dir)

	switch s.Kind {
	case ShapeCuboid:
		tmin, tmax := math.Inf(-1), math.Inf(1)
		var nmin mgl64.Vec3
		for i := 0; i < 3; i++ {
			if math.Abs(d[i]) < Epsilon {
				if math.Abs(o[i]) > s.HalfExtents[i] {
					return 0, mgl64.Vec3{}, false
				}
				continue
			}
			t1 := (-s.HalfExtents[i] - o[i]) / d[i]
			t2 := (s.HalfExtents[i] - o[i]) / d[i]
			n := mgl64.Vec3{}
			n[i] = -1
			if t1 > t2 {
				t1, t2 = t2, t1
				n[i] = 1
			}
			if t1 > tmin {
				tmin = t1
				nmin = n
			}
			tmax = math.Min(tmax, t2)
		}
		if tmax < tmin || tmax < 0 {
			return 0, mgl64.Vec3{}, false
		}
		if tmin < 0 {
			if !solid {
				return tmax, mgl64.Vec3{}, true
			}
			return 0, mgl64.Vec3{}, true
		}
		return tmin, t.Rotation.Rotate(nmin), true

	case ShapeBall:
		a := d.Dot(d)
		if a < Epsilon {
			return 0, mgl64.Vec3{}, false
		}
		b := o.Dot(d)
		c := o.Dot(o) - s.Radius*s.Radius
		if c <= 0 && solid {
			return 0, mgl64.Vec3{}, true
		}
		disc := b*b - a*c
		if disc < 0 {
			return 0, mgl64.Vec3{}, false
		}
		toi := (-b - math.Sqrt(disc)) / a
		if toi < 0 {
			toi = (-b + math.Sqrt(disc)) / a
			if toi < 0 {
				return 0, mgl64.Vec3{}, false
			}
		}
		hit := o.Add(d.Mul(toi))
		return toi, t.Rotation.Rotate(NormalizeOrZero(hit)), true
	}
	return 0, mgl64.Vec3{}, false
}

// overlaps tests two convex shapes. Cone tests probe points along the cone
// axis against the other shape, which is exact for balls and close enough
// for boxes no larger than the cone.
func overlaps(a Shape, ta Transform, b Shape, tb Transform) bool {
	switch {
	case a.Kind == ShapeCone:
		return coneOverlaps(a, ta, b, tb)
	case b.Kind == ShapeCone:
		return coneOverlaps(b, tb, a, ta)
	case a.Kind == ShapeBall:
		p := b.closestPoint(tb, ta.Translation)
		return p.Sub(ta.Translation).Len() <= a.Radius
	case b.Kind == ShapeBall:
		p := a.closestPoint(ta, tb.Translation)
		return p.Sub(tb.Translation).Len() <= b.Radius
	default:
		return boxesOverlap(a, ta, b, tb)
	}
}

func coneOverlaps(cone Shape, tc Transform, other Shape, to Transform) bool {
	apex := tc.Point(mgl64.Vec3{0, cone.HalfHeight, 0})
	base := tc.Point(mgl64.Vec3{0, -cone.HalfHeight, 0})

	if cone.contains(tc, to.Translation) || other.contains(to, apex) {
		return true
	}
	for i := 0; i < coneSamples; i++ {
		f := float64(i) / float64(coneSamples-1)
		q := apex.Add(base.Sub(apex).Mul(f))
		if cone.contains(tc, other.closestPoint(to, q)) {
			return true
		}
	}
	return false
}

// boxesOverlap runs a separating axis test over the 15 box axes.
func boxesOverlap(a Shape, ta Transform, b Shape, tb Transform) bool {
	var axes []mgl64.Vec3
	var ax, bx [3]mgl64.Vec3
	for i := 0; i < 3; i++ {
		unit := mgl64.Vec3{}
		unit[i] = 1
		ax[i] = ta.Rotation.Rotate(unit)
		bx[i] = tb.Rotation.Rotate(unit)
		axes = append(axes, ax[i], bx[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if c := ax[i].Cross(bx[j]); c.LenSqr() > Epsilon {
				axes = append(axes, c.Normalize())
			}
		}
	}

	d := tb.Translation.Sub(ta.Translation)
	for _, axis := range axes {
		ra, rb := 0.0, 0.0
		for i := 0; i < 3; i++ {
			ra += a.HalfExtents[i] * math.Abs(ax[i].Dot(axis))
			rb += b.HalfExtents[i] * math.Abs(bx[i].Dot(axis))
		}
		if math.Abs(d.Dot(axis)) > ra+rb {
			return false
		}
	}
	return true
}
