package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemyDesc(pos mgl64.Vec3) BodyDesc {
	return BodyDesc{
		Type:          Dynamic,
		Position:      pos,
		Shape:         Cuboid(0.5, 0.5, 0.5),
		LinearDamping: 5,
		LockY:         true,
		CCD:           true,
	}
}

func TestWorld_AddRemove(t *testing.T) {
	w := NewWorld()

	a := w.AddBody(enemyDesc(mgl64.Vec3{0, 1, 0}))
	b := w.AddBody(enemyDesc(mgl64.Vec3{5, 1, 0}))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, w.Len())

	w.RemoveBody(a)
	assert.False(t, w.Contains(a))
	assert.Equal(t, 1, w.Len())

	c := w.AddBody(enemyDesc(mgl64.Vec3{}))
	assert.NotEqual(t, a, c, "handles are never reused")

	_, ok := w.Transform(a)
	assert.False(t, ok)
	w.RemoveBody(a) // no-op
}

func TestWorld_StepForceAndDamping(t *testing.T) {
	w := NewWorld()
	h := w.AddBody(enemyDesc(mgl64.Vec3{0, 1, 0}))
	const dt = 1.0 / 60.0

	t.Run("force accelerates along x only", func(t *testing.T) {
		w.SetExternalForce(h, mgl64.Vec3{20, 50, 0})
		w.Step(dt)

		v := w.LinearVelocity(h)
		assert.Greater(t, v.X(), 0.0)
		assert.Equal(t, 0.0, v.Y(), "vertical velocity is locked")

		tr, _ := w.Transform(h)
		assert.Equal(t, 1.0, tr.Translation.Y())
	})

	t.Run("force persists until overwritten", func(t *testing.T) {
		assert.Equal(t, mgl64.Vec3{20, 50, 0}, w.ExternalForce(h))
		w.SetExternalForce(h, mgl64.Vec3{})
		assert.Equal(t, mgl64.Vec3{}, w.ExternalForce(h))
	})

	t.Run("damping decays velocity", func(t *testing.T) {
		w.SetLinearVelocity(h, mgl64.Vec3{4, 0, 0})
		w.Step(dt)
		assert.InDelta(t, 4/(1+dt*5), w.LinearVelocity(h).X(), 1e-9)

		for i := 0; i < 600; i++ {
			w.Step(dt)
		}
		assert.InDelta(t, 0, w.LinearVelocity(h).Len(), 1e-6)
	})
}

func TestWorld_CCDStopsAtWall(t *testing.T) {
	w := NewWorld()
	w.AddBody(BodyDesc{
		Type:     Fixed,
		Position: mgl64.Vec3{5, 1, 0},
		Shape:    Cuboid(0.05, 2, 3),
	})
	h := w.AddBody(enemyDesc(mgl64.Vec3{0, 1, 0}))
	w.SetLinearVelocity(h, mgl64.Vec3{600, 0, 0})

	w.Step(1.0 / 60.0)

	tr, _ := w.Transform(h)
	assert.Less(t, tr.Translation.X(), 5.0, "fast body must not tunnel through the wall")
}

func TestWorld_MoveKinematic(t *testing.T) {
	w := NewWorld()
	player := w.AddBody(BodyDesc{
		Type:     Kinematic,
		Position: mgl64.Vec3{0, 1, 0},
		Shape:    Cuboid(0.5, 0.5, 0.5),
	})

	w.MoveKinematic(player, mgl64.Vec3{1, 0, -2})
	tr, ok := w.Transform(player)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 1, -2}, tr.Translation)

	t.Run("pushed out of fixed colliders", func(t *testing.T) {
		w.AddBody(BodyDesc{
			Type:     Fixed,
			Position: mgl64.Vec3{3, 1, -2},
			Shape:    Cuboid(1, 2, 1),
		})
		w.MoveKinematic(player, mgl64.Vec3{1.5, 0, 0})

		tr, _ := w.Transform(player)
		assert.InDelta(t, 1.5, tr.Translation.X(), 1e-9)
	})

	t.Run("ignores dynamic handles", func(t *testing.T) {
		e := w.AddBody(enemyDesc(mgl64.Vec3{-5, 1, 0}))
		w.MoveKinematic(e, mgl64.Vec3{1, 0, 0})
		tr, _ := w.Transform(e)
		assert.Equal(t, -5.0, tr.Translation.X())
	})
}

func TestWorld_DynamicBodiesSeparate(t *testing.T) {
	w := NewWorld()
	a := w.AddBody(enemyDesc(mgl64.Vec3{0, 1, 0}))
	b := w.AddBody(enemyDesc(mgl64.Vec3{0.4, 1, 0}))

	w.Step(1.0 / 60.0)

	ta, _ := w.Transform(a)
	tb, _ := w.Transform(b)
	assert.InDelta(t, 1.0, tb.Translation.X()-ta.Translation.X(), 1e-9)
}

func TestYawToward(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{0, 0, -1}},
		{"right", mgl64.Vec3{1, 0, 0}},
		{"back-left", mgl64.Vec3{-1, 0, 1}},
		{"ignores height", mgl64.Vec3{0, 5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := YawToward(tt.dir)
			require.True(t, ok)

			want := NormalizeOrZero(Horizontal(tt.dir))
			got := Transform{Rotation: q}.Forward()
			assertVec3Near(t, want, got, 1e-9, "got %v want %v", got, want)
		})
	}

	_, ok := YawToward(mgl64.Vec3{0, 1, 0})
	assert.False(t, ok)
}

func TestReflect(t *testing.T) {
	r := Reflect(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1})
	assertVec3Near(t, mgl64.Vec3{0, 0, 1}, r, 1e-12)

	d := NormalizeOrZero(mgl64.Vec3{1, 0, -1})
	r = Reflect(d, mgl64.Vec3{0, 0, 1})
	assertVec3Near(t, NormalizeOrZero(mgl64.Vec3{1, 0, 1}), r, 1e-12)

	assert.Equal(t, mgl64.Vec3{}, NormalizeOrZero(mgl64.Vec3{}))
	assert.InDelta(t, 1, NormalizeOrZero(mgl64.Vec3{3, 4, 0}).Len(), 1e-12)
	assert.False(t, math.IsNaN(Reflect(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}).X()))
}
