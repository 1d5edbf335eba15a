package replay

import "github.com/younwookim/nightlight/internal/domain/progress"

// Version is the current recording format.
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `json:"f" msgpack:"f"`                       // Frame number
	MX float64 `json:"mx,omitempty" msgpack:"mx,omitempty"` // Move axis X
	MY float64 `json:"my,omitempty" msgpack:"my,omitempty"` // Move axis Y
	CX float64 `json:"cx" msgpack:"cx"`                     // CursorX
	CY float64 `json:"cy" msgpack:"cy"`                     // CursorY
	HC bool    `json:"hc,omitempty" msgpack:"hc,omitempty"` // HasCursor
	TC bool    `json:"tc,omitempty" msgpack:"tc,omitempty"` // ToggleCursed
}

// ReplayData contains all data needed to replay one night
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	SessionID string       `json:"sessionId" msgpack:"sessionId"`
	Seed      int64        `json:"seed" msgpack:"seed"`
	Level     string       `json:"level" msgpack:"level"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`

	// Progress is the run state the night started from.
	Progress progress.GameState `json:"progress" msgpack:"progress"`
}
