package replay

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/younwookim/nightlight/internal/application/system"
	"github.com/younwookim/nightlight/internal/domain/progress"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.State(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the recording being played.
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// State converts a recorded frame back to simulation input. Pause is never
// recorded because paused ticks are not simulated.
func (fi FrameInput) State() system.InputState {
	return system.InputState{
		Move:         mgl64.Vec2{fi.MX, fi.MY},
		Cursor:       mgl64.Vec2{fi.CX, fi.CY},
		HasCursor:    fi.HC,
		ToggleCursed: fi.TC,
	}
}

// Frame records one tick of simulation input.
func Frame(n int, in system.InputState) FrameInput {
	return FrameInput{
		F:  n,
		MX: in.Move.X(),
		MY: in.Move.Y(),
		CX: in.Cursor.X(),
		CY: in.Cursor.Y(),
		HC: in.HasCursor,
		TC: in.ToggleCursed,
	}
}

// NewReplayData starts an empty recording with a fresh session ID. start is
// copied so later purchases do not leak into the recording.
func NewReplayData(seed int64, level string, start *progress.GameState) ReplayData {
	return ReplayData{
		Version:   Version,
		SessionID: uuid.NewString(),
		Seed:      seed,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Progress:  *start.Clone(),
	}
}

// StartState returns a fresh copy of the run state the night started from.
func (d ReplayData) StartState() *progress.GameState {
	return d.Progress.Clone()
}

// CreateTestReplayData creates replay data for testing (idle player aiming at
// a fixed cursor)
func CreateTestReplayData(frames int, cursorX, cursorY float64) ReplayData {
	start := progress.New(progress.Flashlight{Angle: 0.35, Range: 6, Intensity: 500000})
	data := NewReplayData(12345, "yard", start)
	data.Frames = make([]FrameInput, frames)

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			CX: cursorX,
			CY: cursorY,
			HC: true,
		}
	}

	return data
}
