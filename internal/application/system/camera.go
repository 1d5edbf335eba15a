package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/physics"
)

// groundEpsilon rejects rays nearly parallel to the ground plane.
const groundEpsilon = 1e-6

// Ray is a world-space half line.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Camera converts a cursor position into a world ray.
type Camera interface {
	ViewportToWorld(cursor mgl64.Vec2) (Ray, bool)
}

// GroundPoint intersects r with the plane y = 0. It fails when the ray is
// parallel to the ground or the plane lies behind the origin.
func GroundPoint(r Ray) (mgl64.Vec3, bool) {
	if math.Abs(r.Direction.Y()) <= groundEpsilon {
		return mgl64.Vec3{}, false
	}
	t := -r.Origin.Y() / r.Direction.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// IsometricCamera is an orthographic camera looking down at a fixed offset
// from the point it follows.
type IsometricCamera struct {
	offset   mgl64.Vec3
	height   float64
	rate     float64
	width    float64
	screenW  float64
	screenH  float64
	Position mgl64.Vec3

	forward, right, up mgl64.Vec3
}

// NewIsometricCamera creates a camera for a screenW x screenH viewport,
// initially looking at the origin.
func NewIsometricCamera(cfg config.CameraConfig, screenW, screenH int) *IsometricCamera {
	c := &IsometricCamera{
		offset:  cfg.Offset.Vec(),
		height:  cfg.ViewportHeight,
		rate:    cfg.FollowRate,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
	if c.screenH > 0 {
		c.width = c.height * c.screenW / c.screenH
	}
	c.Position = c.offset
	c.forward = physics.NormalizeOrZero(c.offset.Mul(-1))
	c.right = physics.NormalizeOrZero(c.forward.Cross(physics.AxisUp))
	c.up = c.right.Cross(c.forward)
	return c
}

// Target is the ground point the camera is centered on.
func (c *IsometricCamera) Target() mgl64.Vec3 {
	return c.Position.Sub(c.offset)
}

// Follow eases the camera toward target.
func (c *IsometricCamera) Follow(target mgl64.Vec3, dt float64) {
	goal := target.Add(c.offset)
	alpha := mgl64.Clamp(c.rate*dt, 0, 1)
	c.Position = c.Position.Add(goal.Sub(c.Position).Mul(alpha))
}

// ViewportToWorld returns the ray through a screen pixel. Cursors outside
// the viewport yield no ray.
func (c *IsometricCamera) ViewportToWorld(cursor mgl64.Vec2) (Ray, bool) {
	if c.screenW <= 0 || c.screenH <= 0 {
		return Ray{}, false
	}
	if cursor.X() < 0 || cursor.Y() < 0 || cursor.X() > c.screenW || cursor.Y() > c.screenH {
		return Ray{}, false
	}
	nx := cursor.X()/c.screenW*2 - 1
	ny := 1 - cursor.Y()/c.screenH*2

	origin := c.Position.
		Add(c.right.Mul(nx * c.width / 2)).
		Add(c.up.Mul(ny * c.height / 2))
	return Ray{Origin: origin, Direction: c.forward}, true
}

// WorldToViewport projects a world point to screen pixels.
func (c *IsometricCamera) WorldToViewport(p mgl64.Vec3) mgl64.Vec2 {
	rel := p.Sub(c.Position)
	nx := rel.Dot(c.right) / (c.width / 2)
	ny := rel.Dot(c.up) / (c.height / 2)
	return mgl64.Vec2{
		(nx + 1) / 2 * c.screenW,
		(1 - ny) / 2 * c.screenH,
	}
}

// PixelsPerUnit is the screen size of one world unit.
func (c *IsometricCamera) PixelsPerUnit() float64 {
	if c.height <= 0 {
		return 0
	}
	return c.screenH / c.height
}
