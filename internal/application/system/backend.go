package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/physics"
)

// Backend is the rigid-body world the simulation drives. *physics.World
// satisfies it; tests may swap in their own.
type Backend interface {
	AddBody(desc physics.BodyDesc) physics.Handle
	RemoveBody(h physics.Handle)
	Transform(h physics.Handle) (physics.Transform, bool)
	SetRotation(h physics.Handle, rot mgl64.Quat)
	MoveKinematic(h physics.Handle, delta mgl64.Vec3)
	LinearVelocity(h physics.Handle) mgl64.Vec3
	// SetExternalForce replaces the force applied on every step.
	SetExternalForce(h physics.Handle, force mgl64.Vec3)
	CastRay(origin, dir mgl64.Vec3, maxToi float64, solid bool, filter physics.QueryFilter) (physics.RayHit, bool)
	IntersectShape(pos mgl64.Vec3, rot mgl64.Quat, shape physics.Shape, filter physics.QueryFilter, visit func(physics.Handle) bool)
	Step(dt float64)
}

var _ Backend = (*physics.World)(nil)

// Collision groups used by the level.
var (
	// MirrorGroups marks mirror colliders.
	MirrorGroups = physics.CollisionGroups{Memberships: physics.Group2, Filter: physics.GroupAll}
	// mirrorQuery sees only mirrors.
	mirrorQuery = physics.QueryFilter{
		Groups: physics.CollisionGroups{Memberships: physics.GroupAll, Filter: physics.Group2},
	}
)
