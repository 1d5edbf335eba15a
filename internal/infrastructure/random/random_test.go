package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_Ranges(t *testing.T) {
	g := New(12345)

	for i := 0; i < 1000; i++ {
		f := g.Float64Range(1.4, 3.0)
		assert.GreaterOrEqual(t, f, 1.4)
		assert.Less(t, f, 3.0)

		n := g.IntRange(1, 6)
		assert.GreaterOrEqual(t, n, 1)
		assert.Less(t, n, 6)
	}
}

func TestRand_Degenerate(t *testing.T) {
	g := New(1)

	assert.Equal(t, 2.0, g.Float64Range(2, 2))
	assert.Equal(t, 4, g.IntRange(4, 4))
	assert.False(t, g.Bool(0))
	assert.True(t, g.Bool(1))
}

func TestRand_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64Range(-1, 1), b.Float64Range(-1, 1))
		assert.Equal(t, a.Bool(0.5), b.Bool(0.5))
	}
	assert.Equal(t, int64(42), a.Seed())
}
