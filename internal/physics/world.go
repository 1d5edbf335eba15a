package physics

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// maxCCDSubsteps bounds the sub-stepping of a single fast body.
const maxCCDSubsteps = 8

// World owns every body and integrates them on Step.
type World struct {
	bodies map[Handle]*body
	order  []Handle
	nextID Handle
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		bodies: make(map[Handle]*body),
		nextID: 1,
	}
}

// AddBody inserts a body and returns its handle.
func (w *World) AddBody(desc BodyDesc) Handle {
	h := w.nextID
	w.nextID++
	w.bodies[h] = newBody(h, desc)
	w.order = append(w.order, h)
	return h
}

// RemoveBody deletes a body. Unknown handles are ignored.
func (w *World) RemoveBody(h Handle) {
	if _, ok := w.bodies[h]; !ok {
		return
	}
	delete(w.bodies, h)
	if i := slices.Index(w.order, h); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Contains reports whether h is a live body.
func (w *World) Contains(h Handle) bool {
	_, ok := w.bodies[h]
	return ok
}

// Transform returns the pose of h.
func (w *World) Transform(h Handle) (Transform, bool) {
	b, ok := w.bodies[h]
	if !ok {
		return Transform{}, false
	}
	return b.pose, true
}

// SetRotation overwrites the orientation of h.
func (w *World) SetRotation(h Handle, rot mgl64.Quat) {
	if b, ok := w.bodies[h]; ok {
		b.pose.Rotation = rot.Normalize()
	}
}

// SetTranslation teleports h.
func (w *World) SetTranslation(h Handle, p mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok {
		b.pose.Translation = p
	}
}

// LinearVelocity returns the velocity of h, zero for unknown handles.
func (w *World) LinearVelocity(h Handle) mgl64.Vec3 {
	if b, ok := w.bodies[h]; ok {
		return b.linvel
	}
	return mgl64.Vec3{}
}

// SetLinearVelocity overwrites the velocity of a dynamic body.
func (w *World) SetLinearVelocity(h Handle, v mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && b.desc.Type == Dynamic {
		b.linvel = v
	}
}

// SetExternalForce replaces the persistent force applied to h each step.
func (w *World) SetExternalForce(h Handle, f mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok {
		b.force = f
	}
}

// ExternalForce returns the force currently applied to h.
func (w *World) ExternalForce(h Handle) mgl64.Vec3 {
	if b, ok := w.bodies[h]; ok {
		return b.force
	}
	return mgl64.Vec3{}
}

// MoveKinematic displaces a kinematic body immediately and pushes it out of
// fixed colliders it ends up overlapping.
func (w *World) MoveKinematic(h Handle, delta mgl64.Vec3) {
	b, ok := w.bodies[h]
	if !ok || b.desc.Type != Kinematic {
		return
	}
	b.pose.Translation = b.pose.Translation.Add(delta)
	for _, oh := range w.order {
		o := w.bodies[oh]
		if o.desc.Type == Fixed {
			w.separate(b, o, 1, 0)
		}
	}
}

// Step integrates dynamic bodies by dt and resolves overlaps.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, h := range w.order {
		b := w.bodies[h]
		if b.desc.Type != Dynamic {
			continue
		}

		b.linvel = b.linvel.Add(b.force.Mul(dt / b.mass))
		if b.desc.LinearDamping > 0 {
			b.linvel = b.linvel.Mul(1 / (1 + dt*b.desc.LinearDamping))
		}
		if b.desc.LockY {
			b.linvel[1] = 0
		}

		steps := 1
		if b.desc.CCD {
			if ext := b.desc.Shape.minExtent(); ext > 0 {
				steps = int(math.Ceil(b.linvel.Len() * dt / ext))
				steps = max(1, min(steps, maxCCDSubsteps))
			}
		}

		sub := dt / float64(steps)
		for i := 0; i < steps; i++ {
			b.pose.Translation = b.pose.Translation.Add(b.linvel.Mul(sub))
			for _, oh := range w.order {
				o := w.bodies[oh]
				if o.desc.Type != Dynamic {
					w.separate(b, o, 1, 0)
				}
			}
		}
	}

	for i, ha := range w.order {
		a := w.bodies[ha]
		if a.desc.Type != Dynamic {
			continue
		}
		for _, hb := range w.order[i+1:] {
			b := w.bodies[hb]
			if b.desc.Type == Dynamic {
				w.separate(a, b, 0.5, 0.5)
			}
		}
	}
}

// separate pushes a and b apart along the axis of least XZ penetration,
// moving each by its share of the overlap. Bodies only move horizontally.
func (w *World) separate(a, b *body, shareA, shareB float64) {
	if a == b || !a.solid() || !b.solid() || !a.desc.Groups.Test(b.desc.Groups) {
		return
	}

	alo, ahi := a.desc.Shape.aabb(a.pose)
	blo, bhi := b.desc.Shape.aabb(b.pose)
	for i := 0; i < 3; i++ {
		if ahi[i] <= blo[i] || bhi[i] <= alo[i] {
			return
		}
	}

	px := math.Min(ahi[0]-blo[0], bhi[0]-alo[0])
	pz := math.Min(ahi[2]-blo[2], bhi[2]-alo[2])

	var axis int
	var depth float64
	if px < pz {
		axis, depth = 0, px
	} else {
		axis, depth = 2, pz
	}

	sign := 1.0
	if a.pose.Translation[axis] < b.pose.Translation[axis] {
		sign = -1
	}

	a.pose.Translation[axis] += sign * depth * shareA
	b.pose.Translation[axis] -= sign * depth * shareB

	// drop velocity into the contact
	if shareA > 0 && a.linvel[axis]*sign < 0 {
		a.linvel[axis] = 0
	}
	if shareB > 0 && b.linvel[axis]*sign > 0 {
		b.linvel[axis] = 0
	}
}
