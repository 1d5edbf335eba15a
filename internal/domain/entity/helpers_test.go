package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// assertVec3Near compares component-wise with an absolute tolerance, so an
// expected 0 accepts rounding noise.
func assertVec3Near(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}
