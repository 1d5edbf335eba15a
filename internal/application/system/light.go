package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/nightlight/internal/domain/entity"
	"github.com/younwookim/nightlight/internal/ecs"
	"github.com/younwookim/nightlight/internal/physics"
	"github.com/zyedidia/generic/mapset"
)

const (
	// coneTolerance decides when a cached cone can be reused.
	coneTolerance = 1e-6
	coneCacheSize = 4
)

// LightEvent reports an illumination transition on an enemy.
type LightEvent struct {
	Enemy  ecs.EntityID
	Source entity.LightFlags
	Lit    bool
}

type coneEntry struct {
	rng, angle float64
	shape      physics.Shape
}

// coneCache memoizes cone shapes by (range, outer angle).
type coneCache struct {
	entries []coneEntry
	builds  int
}

func (c *coneCache) get(rng, angle float64) physics.Shape {
	for _, e := range c.entries {
		if math.Abs(e.rng-rng) <= coneTolerance && math.Abs(e.angle-angle) <= coneTolerance {
			return e.shape
		}
	}
	shape := physics.Cone(rng/2, rng*math.Tan(angle))
	if len(c.entries) == coneCacheSize {
		c.entries = c.entries[1:]
	}
	c.entries = append(c.entries, coneEntry{rng: rng, angle: angle, shape: shape})
	c.builds++
	return shape
}

// spotSource is one cone of light for a tick.
type spotSource struct {
	pose  physics.Transform
	rng   float64
	angle float64
}

// LightSystem decides which enemies are lit by spotlights and torches.
type LightSystem struct {
	level *Level
	cones coneCache

	spotHits  mapset.Set[ecs.EntityID]
	torchHits mapset.Set[ecs.EntityID]

	// OnLightChange is called for every flag transition.
	OnLightChange func(ev LightEvent)
}

// NewLightSystem creates a light detector.
func NewLightSystem(level *Level) *LightSystem {
	return &LightSystem{
		level:     level,
		spotHits:  mapset.New[ecs.EntityID](),
		torchHits: mapset.New[ecs.EntityID](),
	}
}

// Update re-evaluates both light kinds and returns the transitions in enemy
// ID order, spotlight before torch.
func (s *LightSystem) Update() ([]LightEvent, error) {
	s.spotHits.Clear()
	s.torchHits.Clear()

	sources, err := s.spotSources()
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		s.castCone(src)
	}
	s.castTorches()

	var events []LightEvent
	w := s.level.World
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		if e.Lit.Update(entity.LitSpotlight, s.spotHits.Has(id)) {
			e.SpotLamp.Visible = e.Lit.Has(entity.LitSpotlight)
			events = append(events, LightEvent{Enemy: id, Source: entity.LitSpotlight, Lit: e.SpotLamp.Visible})
		}
		if e.Lit.Update(entity.LitTorch, s.torchHits.Has(id)) {
			e.TorchLamp.Visible = e.Lit.Has(entity.LitTorch)
			events = append(events, LightEvent{Enemy: id, Source: entity.LitTorch, Lit: e.TorchLamp.Visible})
		}
	}

	if s.OnLightChange != nil {
		for _, ev := range events {
			s.OnLightChange(ev)
		}
	}
	return events, nil
}

func (s *LightSystem) spotSources() ([]spotSource, error) {
	p, pose, err := s.level.player()
	if err != nil {
		return nil, err
	}

	var sources []spotSource
	if p.Spotlight.Visible {
		sources = append(sources, spotSource{
			pose:  p.Spotlight.Pose(pose),
			rng:   p.Spotlight.Range,
			angle: p.Spotlight.OuterAngle,
		})
	}
	if beam := s.level.World.Beam; beam.Visible {
		sources = append(sources, spotSource{
			pose:  beam.Pose,
			rng:   beam.Range,
			angle: beam.OuterAngle,
		})
	}
	return sources, nil
}

// castCone finds enemies overlapping a light cone whose apex sits on the
// light and whose base lies range ahead of it.
func (s *LightSystem) castCone(src spotSource) {
	if src.rng <= 0 || src.angle <= 0 {
		return
	}
	dir := src.pose.Forward()
	center := src.pose.Translation.Add(dir.Mul(src.rng / 2))
	rot := mgl64.QuatBetweenVectors(physics.AxisUp, dir.Mul(-1))
	cone := s.cones.get(src.rng, src.angle)

	s.level.Physics.IntersectShape(center, rot, cone, physics.DefaultFilter(), func(h physics.Handle) bool {
		if e, ok := s.level.World.EnemyByBody(h); ok {
			s.spotHits.Put(e.ID)
		}
		return true
	})
}

func (s *LightSystem) castTorches() {
	w := s.level.World
	now := s.level.State.SurvivedSeconds
	for _, tid := range w.TorchIDs() {
		torch := w.Torches[tid]
		if !torch.Lit(now) {
			continue
		}
		for _, id := range w.EnemyIDs() {
			pose, ok := s.level.Physics.Transform(w.Enemies[id].Body)
			if ok && torch.Reaches(pose.Translation) {
				s.torchHits.Put(id)
			}
		}
	}
}
