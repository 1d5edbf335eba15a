// Package night provides the screens of a run: intro, level, dead, shop and
// end. They share one Run and hand it to each other on transition.
package night

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/application/system"
	"github.com/younwookim/nightlight/internal/content"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/random"
)

// Run is the state shared by every screen of one playthrough.
type Run struct {
	Tuning *config.Tuning
	Level  *config.Level
	State  *progress.GameState
	Shop   *progress.Shop
	Log    zerolog.Logger

	// RecordPath, when set, records every night to this file. The last night
	// recorded wins.
	RecordPath string
	// Seed returns the RNG seed of the next night.
	Seed func() int64

	quotes []content.Quote
	next   int
}

// NewRun starts a run on night 1. seed shuffles the intro quotes.
func NewRun(tuning *config.Tuning, level *config.Level, seed int64, log zerolog.Logger) *Run {
	fc := tuning.Flashlight
	r := &Run{
		Tuning: tuning,
		Level:  level,
		State:  progress.New(progress.Flashlight{Angle: fc.Angle, Range: fc.Range, Intensity: fc.Intensity}),
		Shop:   progress.NewShop(tuning.Shop),
		Log:    log,
		Seed:   func() int64 { return time.Now().UnixNano() },
		quotes: append([]content.Quote(nil), content.Quotes...),
	}
	random.New(seed).Shuffle(len(r.quotes), func(i, j int) {
		r.quotes[i], r.quotes[j] = r.quotes[j], r.quotes[i]
	})
	return r
}

// Start returns the first screen.
func (r *Run) Start() scene.Scene {
	return NewIntro(r)
}

// NextQuote cycles through the shuffled quotes.
func (r *Run) NextQuote() content.Quote {
	if len(r.quotes) == 0 {
		return content.Quote{}
	}
	q := r.quotes[r.next]
	r.next = (r.next + 1) % len(r.quotes)
	return q
}

// NewSimulation builds one night. Replays rebuild it from the same inputs,
// so everything that affects the outcome must come through here.
func NewSimulation(tuning *config.Tuning, level *config.Level, state *progress.GameState, seed int64, log zerolog.Logger) (*system.Simulation, *system.IsometricCamera) {
	d := tuning.Display
	cam := system.NewIsometricCamera(tuning.Camera, d.ScreenWidth, d.ScreenHeight)
	sim := system.NewSimulation(system.Options{
		Tuning: tuning,
		Level:  level,
		State:  state,
		RNG:    random.New(seed),
		Camera: cam,
		Logger: log.With().Int64("seed", seed).Logger(),
	})
	return sim, cam
}
