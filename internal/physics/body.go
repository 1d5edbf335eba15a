package physics

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies a body. Handles are never reused within a World.
type Handle uint32

// BodyType selects how a body is integrated.
type BodyType int

const (
	// Fixed bodies never move.
	Fixed BodyType = iota
	// Dynamic bodies are integrated from velocity and external force.
	Dynamic
	// Kinematic bodies are moved explicitly by displacement.
	Kinematic
)

// Group is a collision group bitmask.
type Group uint32

const (
	Group1 Group = 1 << iota
	Group2
	Group3
	Group4

	GroupNone Group = 0
	GroupAll  Group = 0xFFFFFFFF
)

// CollisionGroups decides which colliders may interact. Two group pairs
// interact when each one's memberships intersect the other's filter.
type CollisionGroups struct {
	Memberships Group
	Filter      Group
}

// DefaultGroups puts a collider in Group1 and lets it see everything.
func DefaultGroups() CollisionGroups {
	return CollisionGroups{Memberships: Group1, Filter: GroupAll}
}

// Test reports whether g and other interact.
func (g CollisionGroups) Test(other CollisionGroups) bool {
	return g.Memberships&other.Filter != 0 && other.Memberships&g.Filter != 0
}

// BodyDesc describes a body to add to the world.
type BodyDesc struct {
	Type          BodyType
	Position      mgl64.Vec3
	Rotation      mgl64.Quat
	Shape         Shape
	Groups        CollisionGroups
	Sensor        bool
	LinearDamping float64
	// LockY freezes vertical translation of dynamic bodies.
	LockY bool
	// CCD sub-steps fast movers so they cannot tunnel through thin colliders.
	CCD bool
	// Density defaults to 1.
	Density float64
}

type body struct {
	handle Handle
	desc   BodyDesc
	pose   Transform
	linvel mgl64.Vec3
	force  mgl64.Vec3
	mass   float64
}

func newBody(h Handle, desc BodyDesc) *body {
	rot := desc.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	if desc.Groups == (CollisionGroups{}) {
		desc.Groups = DefaultGroups()
	}
	density := desc.Density
	if density <= 0 {
		density = 1
	}
	mass := desc.Shape.Volume() * density
	if mass <= 0 {
		mass = 1
	}
	return &body{
		handle: h,
		desc:   desc,
		pose:   Transform{Translation: desc.Position, Rotation: rot},
		mass:   mass,
	}
}

func (b *body) solid() bool {
	return !b.desc.Sensor
}
