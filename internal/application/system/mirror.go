package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/physics"
)

// MirrorSystem bounces the player's spotlight off the first mirror in its
// path. The beam is hidden on any tick it does not bounce.
type MirrorSystem struct {
	level *Level
	cfg   config.MirrorConfig
}

// NewMirrorSystem creates a mirror solver.
func NewMirrorSystem(level *Level, cfg config.MirrorConfig) *MirrorSystem {
	return &MirrorSystem{level: level, cfg: cfg}
}

// Update recomputes the reflected beam.
func (s *MirrorSystem) Update() error {
	beam := &s.level.World.Beam

	p, pose, err := s.level.player()
	if err != nil {
		beam.Hide()
		return err
	}
	spot := p.Spotlight
	if !spot.Visible {
		beam.Hide()
		return nil
	}

	src := spot.Pose(pose)
	dir := src.Forward()
	hit, ok := s.level.Physics.CastRay(src.Translation, dir, spot.Range, true, mirrorQuery)
	if !ok {
		beam.Hide()
		return nil
	}
	mirror, ok := s.level.World.MirrorByBody(hit.Handle)
	if !ok {
		beam.Hide()
		return nil
	}

	r := physics.Reflect(dir, mirror.WorldNormal())
	if r == (mgl64.Vec3{}) {
		beam.Hide()
		return nil
	}
	rot, ok := physics.LookTo(r)
	if !ok {
		beam.Hide()
		return nil
	}

	point := hit.Point(src.Translation, dir)
	beam.Pose = physics.Transform{
		Translation: point.Add(r.Mul(s.cfg.SurfaceOffset)),
		Rotation:    rot,
	}
	beam.InnerAngle = spot.InnerAngle
	beam.OuterAngle = spot.OuterAngle
	beam.Range = spot.Range * s.cfg.RangeScale
	beam.Intensity = spot.Intensity * s.cfg.IntensityScale
	beam.Visible = true
	return nil
}
