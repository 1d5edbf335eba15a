package night

import (
	"fmt"
	"time"

	"github.com/younwookim/nightlight/internal/application/replay"
	"github.com/younwookim/nightlight/internal/application/system"
	"github.com/younwookim/nightlight/internal/domain/progress"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// start is the run state the night begins from.
func NewRecorder(seed int64, level string, start *progress.GameState) *Recorder {
	data := replay.NewReplayData(seed, level, start)
	data.Frames = make([]replay.FrameInput, 0, 9000) // Pre-allocate for a full night at 60fps
	return &Recorder{
		data:      data,
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.Frame(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file. The extension picks the encoding.
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
