package system

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
	"github.com/younwookim/nightlight/internal/infrastructure/random"
	"github.com/younwookim/nightlight/internal/physics"
)

const testDT = 1.0 / 60.0

// assertVec3Near compares component-wise with an absolute tolerance, so an
// expected 0 accepts rounding noise.
func assertVec3Near(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func assertVec2Near(t *testing.T, want, got mgl64.Vec2, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

// testRNG returns a seeded source for deterministic tests
func testRNG() *random.Rand {
	return random.New(12345)
}

// scriptedRNG replays fixed fractions and records every draw.
type scriptedRNG struct {
	fracs []float64
	bools []bool
	calls []string
}

func (r *scriptedRNG) next() float64 {
	if len(r.fracs) == 0 {
		return 0.5
	}
	f := r.fracs[0]
	r.fracs = r.fracs[1:]
	return f
}

func (r *scriptedRNG) Float64Range(min, max float64) float64 {
	r.calls = append(r.calls, fmt.Sprintf("float[%g,%g)", min, max))
	return min + r.next()*(max-min)
}

func (r *scriptedRNG) IntRange(min, max int) int {
	r.calls = append(r.calls, fmt.Sprintf("int[%d,%d)", min, max))
	return min + int(r.next()*float64(max-min))
}

func (r *scriptedRNG) Bool(p float64) bool {
	r.calls = append(r.calls, fmt.Sprintf("bool(%g)", p))
	if len(r.bools) == 0 {
		return false
	}
	b := r.bools[0]
	r.bools = r.bools[1:]
	return b
}

// pointCamera looks straight down at a fixed ground point.
type pointCamera struct {
	target mgl64.Vec3
}

func (c *pointCamera) ViewportToWorld(mgl64.Vec2) (Ray, bool) {
	return Ray{
		Origin:    mgl64.Vec3{c.target.X(), 10, c.target.Z()},
		Direction: mgl64.Vec3{0, -1, 0},
	}, true
}

func createTestState() *progress.GameState {
	return progress.New(progress.Flashlight{Angle: 0.35, Range: 6, Intensity: 500000})
}

// postTutorial returns a state past the first-night tutorial.
func postTutorial() *progress.GameState {
	s := createTestState()
	s.Night = 2
	return s
}

func createTestSimulation(state *progress.GameState, rng random.Source, lvl *config.Level) *Simulation {
	return NewSimulation(Options{
		Tuning: config.Default(),
		Level:  lvl,
		State:  state,
		RNG:    rng,
		Camera: &pointCamera{target: mgl64.Vec3{0, 0, -10}},
		Logger: logging.Nop(),
	})
}

// aimInput points the cursor (and so the player) at the camera target.
func aimInput() InputState {
	return InputState{HasCursor: true}
}

func pose(lv *Level, h physics.Handle) physics.Transform {
	t, _ := lv.Physics.Transform(h)
	return t
}

func mirrorLevel(z float64) *config.Level {
	lvl := config.DefaultLevel()
	lvl.Mirrors = []config.MirrorSpawn{{
		Position:    config.Vec3{0, 0.2, z},
		HalfExtents: config.Vec3{1.5, 2, 0.06},
		Normal:      config.Vec3{0, 0, 1},
	}}
	return lvl
}
