package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/nightlight/internal/physics"
)

func TestTorch_DutyCycle(t *testing.T) {
	torch := &Torch{Range: 5, OnSeconds: 2, OffSeconds: 2}

	tests := []struct {
		at   float64
		want bool
	}{
		{0, true},
		{1.9, true},
		{2.0, false},
		{3.5, false},
		{4.0, true},
		{7.0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, torch.Lit(tt.at), "t=%v", tt.at)
	}

	always := &Torch{OnSeconds: 2}
	assert.True(t, always.Lit(100))
}

func TestTorch_Reaches(t *testing.T) {
	torch := &Torch{Position: mgl64.Vec3{0, 1, 0}, Range: 5}

	assert.True(t, torch.Reaches(mgl64.Vec3{3, 1, 4}), "boundary is inclusive")
	assert.False(t, torch.Reaches(mgl64.Vec3{3, 1, 4.01}))
}

func TestMirror_WorldNormal(t *testing.T) {
	m := &Mirror{
		Pose:   physics.Transform{Rotation: mgl64.QuatRotate(mgl64.DegToRad(90), physics.AxisUp)},
		Normal: mgl64.Vec3{0, 0, 1},
	}
	assertVec3Near(t, mgl64.Vec3{1, 0, 0}, m.WorldNormal(), 1e-12)
}
