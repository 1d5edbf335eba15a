package night

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/application/state"
	"github.com/younwookim/nightlight/internal/application/system"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
)

// Level is the scene that plays one night
type Level struct {
	run     *Run
	sim     *system.Simulation
	camera  *system.IsometricCamera
	input   *system.InputSystem
	phase   state.Phase
	screenW int
	screenH int
	dt      float64
	seed    int64
	log     zerolog.Logger

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// NewLevel creates the scene for the run's current night.
// If run.RecordPath is set, the night is recorded.
func NewLevel(run *Run) *Level {
	d := run.Tuning.Display
	seed := run.Seed()

	l := &Level{
		run:            run,
		input:          system.NewInputSystem(d.ScreenWidth, d.ScreenHeight),
		phase:          state.PhaseRunning,
		screenW:        d.ScreenWidth,
		screenH:        d.ScreenHeight,
		dt:             1.0 / float64(d.Framerate),
		seed:           seed,
		log:            logging.Component(run.Log, "level"),
		recordFilename: run.RecordPath,
	}
	l.sim, l.camera = NewSimulation(run.Tuning, run.Level, run.State, seed, run.Log)

	// Initialize recorder if recording is enabled
	if l.recordFilename != "" {
		l.recorder = NewRecorder(seed, run.Level.ID, run.State)
		l.log.Info().Str("file", l.recordFilename).Int64("seed", seed).Msg("recording enabled")
	}
	return l
}

// Name implements scene.Scene
func (l *Level) Name() string {
	return "level"
}

// Update proceeds the night (implements scene.Scene)
func (l *Level) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && l.recorder != nil {
		l.saveRecording()
	}
	return l.Step(l.input.GetInput())
}

// Step applies one tick of input. A paused night reads only the pause key.
func (l *Level) Step(in system.InputState) (scene.Scene, error) {
	if in.Pause {
		l.phase = l.phase.TogglePause()
		l.log.Info().Stringer("phase", l.phase).Msg("pause toggled")
	}
	if l.phase != state.PhaseRunning {
		return nil, nil
	}

	// Record input if recording is enabled
	if l.recorder != nil {
		l.recorder.RecordFrame(in)
	}

	res, err := l.sim.Tick(in, l.dt)
	if err != nil {
		return nil, fmt.Errorf("failed to tick night %d: %w", l.run.State.Night, err)
	}

	switch {
	case res.Defeated:
		l.phase = state.PhaseDefeated
		return NewDead(l.run), nil
	case res.Sunrise:
		l.phase = state.PhaseSunrise
		return NewEnd(l.run), nil
	}
	return nil, nil // nil = stay on this scene
}

// Phase returns where the night is.
func (l *Level) Phase() state.Phase {
	return l.phase
}

// saveRecording saves the current recording to file
func (l *Level) saveRecording() {
	if l.recorder == nil || l.recorder.FrameCount() == 0 {
		return
	}

	filename := l.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := l.recorder.Save(filename); err != nil {
		l.log.Error().Err(err).Str("file", filename).Msg("failed to save recording")
		return
	}
	l.log.Info().Str("file", filename).Int("frames", l.recorder.FrameCount()).Msg("recording saved")
}

// Draw renders the night
func (l *Level) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	l.drawGround(screen)
	l.drawTorches(screen)
	l.drawMirrors(screen)
	l.drawLights(screen)
	l.drawEnemies(screen)
	l.drawPlayer(screen)
	l.drawFeedback(screen)

	// Draw UI (HP bar, clock, etc.) - always on top
	l.drawUI(screen)

	if l.phase == state.PhasePaused {
		l.drawPauseOverlay(screen)
	}
}

// OnEnter is called when entering this scene
func (l *Level) OnEnter() {
	l.log.Info().Int("night", l.run.State.Night).Int64("seed", l.seed).Msg("night begins")
}

// OnExit is called when leaving this scene
func (l *Level) OnExit() {
	l.saveRecording()
}
