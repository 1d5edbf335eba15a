package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/domain/entity"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/ecs"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/random"
	"github.com/younwookim/nightlight/internal/physics"
)

// ErrMissingEntity is returned when a singleton a stage depends on is absent.
var ErrMissingEntity = errors.New("missing entity")

// Level is the state shared by every stage of one night.
type Level struct {
	World   *ecs.World
	Physics Backend
	State   *progress.GameState
	Tuning  *config.Tuning
	RNG     random.Source
	Camera  Camera

	// Elapsed is the time since the level started. It drives the cursed
	// swirl and wobble and, unlike the night clock, is never reset.
	Elapsed float64
}

func (lv *Level) player() (*entity.Player, physics.Transform, error) {
	p := lv.World.Player
	if p == nil {
		return nil, physics.Transform{}, fmt.Errorf("%w: player", ErrMissingEntity)
	}
	pose, ok := lv.Physics.Transform(p.Body)
	if !ok {
		return nil, physics.Transform{}, fmt.Errorf("%w: player body %d", ErrMissingEntity, p.Body)
	}
	return p, pose, nil
}

// SizeCurve is the enemy health to scale curve from the tuning.
func (lv *Level) SizeCurve() entity.SizeCurve {
	return entity.SizeCurve{Min: lv.Tuning.Enemy.MinSize, Reference: lv.Tuning.Enemy.ReferenceHealth}
}

// SpawnPlayer creates the kinematic player body and its lights.
func (lv *Level) SpawnPlayer(pos mgl64.Vec3) *entity.Player {
	pc := lv.Tuning.Player
	fc := lv.Tuning.Flashlight

	body := lv.Physics.AddBody(physics.BodyDesc{
		Type:     physics.Kinematic,
		Position: pos,
		Shape:    physics.Cuboid(pc.HalfExtent, pc.HalfExtent, pc.HalfExtent),
	})

	p := entity.NewPlayer(lv.World.NewEntity(), body, pc.Speed, pc.MaxHealth)
	p.Spotlight = entity.Spotlight{Offset: pc.SpotlightOffset.Vec(), Visible: true}
	p.Upper = entity.Spotlight{Offset: pc.UpperLightOffset.Vec(), Visible: true}
	p.Fill = entity.Spotlight{
		Offset:     mgl64.Vec3{0, fc.FillHeight - pos.Y(), 0},
		Rotation:   mgl64.QuatBetweenVectors(physics.AxisForward, mgl64.Vec3{0, -1, 0}),
		OuterAngle: fc.FillAngle,
		InnerAngle: fc.FillAngle - fc.InnerGap,
		Range:      fc.FillRange,
		Intensity:  fc.FillIntensity,
		Visible:    true,
	}
	lv.applyFlashlight(p)
	lv.World.AddPlayer(p)
	return p
}

// applyFlashlight copies the current upgrade onto the player's cones so shop
// purchases take effect without respawning.
func (lv *Level) applyFlashlight(p *entity.Player) {
	fl := lv.State.Flashlight
	p.AimFlashlight(fl.Angle, fl.Range, fl.Intensity, lv.Tuning.Flashlight.InnerGap)
}

// SpawnMirror places a static mirror.
func (lv *Level) SpawnMirror(spec config.MirrorSpawn) *entity.Mirror {
	rot := mgl64.QuatRotate(mgl64.DegToRad(spec.YawDeg), physics.AxisUp)
	he := spec.HalfExtents.Vec()
	body := lv.Physics.AddBody(physics.BodyDesc{
		Type:     physics.Fixed,
		Position: spec.Position.Vec(),
		Rotation: rot,
		Shape:    physics.Cuboid(he.X(), he.Y(), he.Z()),
		Groups:   MirrorGroups,
	})

	normal := spec.Normal.Vec()
	if normal == (mgl64.Vec3{}) {
		normal = physics.AxisBack
	}
	m := &entity.Mirror{
		ID:          lv.World.NewEntity(),
		Body:        body,
		Pose:        physics.Transform{Translation: spec.Position.Vec(), Rotation: rot},
		HalfExtents: he,
		Normal:      normal,
	}
	lv.World.AddMirror(m)
	return m
}

// SpawnTorch places a purchased torch.
func (lv *Level) SpawnTorch(pos mgl64.Vec3, t progress.Torch) *entity.Torch {
	torch := &entity.Torch{
		ID:         lv.World.NewEntity(),
		Position:   pos,
		Range:      t.Range,
		OnSeconds:  t.OnSeconds,
		OffSeconds: t.OffSeconds,
	}
	lv.World.AddTorch(torch)
	return torch
}

// SpawnEnemy creates a dynamic enemy body that only slides on the ground.
func (lv *Level) SpawnEnemy(pos mgl64.Vec3, speed, health float64, variant int) *entity.Enemy {
	ec := lv.Tuning.Enemy
	body := lv.Physics.AddBody(physics.BodyDesc{
		Type:          physics.Dynamic,
		Position:      pos,
		Shape:         physics.Cuboid(ec.HalfExtent, ec.HalfExtent, ec.HalfExtent),
		LinearDamping: ec.LinearDamping,
		LockY:         true,
		CCD:           true,
	})

	e := entity.NewEnemy(lv.World.NewEntity(), body, speed, health, variant, lv.SizeCurve())
	lv.World.AddEnemy(e)
	return e
}

// Despawn removes an enemy and its body.
func (lv *Level) Despawn(e *entity.Enemy) {
	lv.Physics.RemoveBody(e.Body)
	lv.World.DestroyEntity(e.ID)
}
