package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/physics"
)

var (
	// Camera-relative ground axes of the isometric view.
	moveForward = physics.NormalizeOrZero(mgl64.Vec3{-1, 0, -1})
	moveRight   = physics.NormalizeOrZero(mgl64.Vec3{1, 0, -1})
)

// ControllerSystem turns input into player displacement and facing.
type ControllerSystem struct {
	level  *Level
	cursed *CursedSystem
}

// NewControllerSystem creates a controller bound to a level.
func NewControllerSystem(level *Level, cursed *CursedSystem) *ControllerSystem {
	return &ControllerSystem{level: level, cursed: cursed}
}

// Displacement maps a movement axis to a ground displacement. Diagonal
// input is not normalized.
func Displacement(in mgl64.Vec2, speed, dt float64) mgl64.Vec3 {
	dir := moveForward.Mul(in.Y()).Add(moveRight.Mul(in.X()))
	return dir.Mul(speed * dt)
}

// Move displaces the player. A zero axis does nothing, even while cursed.
func (s *ControllerSystem) Move(in mgl64.Vec2, dt float64) error {
	p, _, err := s.level.player()
	if err != nil {
		return err
	}
	if in == (mgl64.Vec2{}) {
		return nil
	}
	if s.cursed.Controls.Enabled {
		in = s.cursed.Steer(in, s.level.Elapsed)
	}
	s.level.Physics.MoveKinematic(p.Body, Displacement(in, p.Speed, dt))
	return nil
}

// Aim turns the player toward the ground point under the cursor.
func (s *ControllerSystem) Aim(in InputState, dt float64) error {
	p, pose, err := s.level.player()
	if err != nil {
		return err
	}
	if s.level.Camera == nil {
		return fmt.Errorf("%w: camera", ErrMissingEntity)
	}
	if !in.HasCursor {
		return nil
	}

	ray, ok := s.level.Camera.ViewportToWorld(in.Cursor)
	if !ok {
		return nil
	}
	target, ok := GroundPoint(ray)
	if !ok {
		return nil
	}

	cursed := s.cursed.Controls.Enabled
	if cursed {
		target = s.cursed.AimTarget(pose.Translation, target, s.level.Elapsed)
	}

	desired := physics.NormalizeOrZero(physics.Horizontal(target.Sub(pose.Translation)))
	if desired == (mgl64.Vec3{}) {
		return nil
	}

	final := desired
	if cursed {
		final = s.cursed.Smooth(desired, dt)
	} else {
		s.cursed.Reset()
	}

	if rot, ok := physics.YawToward(final); ok {
		s.level.Physics.SetRotation(p.Body, rot)
	}
	return nil
}
