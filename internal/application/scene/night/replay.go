package night

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/replay"
	"github.com/younwookim/nightlight/internal/application/system"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

// Outcome is where a replayed night ended up.
type Outcome struct {
	Frames   int
	Kills    int
	Defeated bool
	Sunrise  bool
	Snapshot system.Snapshot
}

// Replay runs a recorded night headlessly. It stops at the end of the
// recording or on the first defeat or sunrise.
func Replay(data replay.ReplayData, tuning *config.Tuning, level *config.Level, log zerolog.Logger) (Outcome, error) {
	sim, _ := NewSimulation(tuning, level, data.StartState(), data.Seed, log)
	dt := 1.0 / float64(tuning.Display.Framerate)

	var out Outcome
	r := replay.NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		res, err := sim.Tick(in, dt)
		if err != nil {
			return out, fmt.Errorf("failed to replay frame %d: %w", r.CurrentFrame(), err)
		}
		out.Frames++
		out.Kills += res.Kills
		if res.Defeated || res.Sunrise {
			out.Defeated = res.Defeated
			out.Sunrise = res.Sunrise && !res.Defeated
			break
		}
	}
	out.Snapshot = sim.Snapshot()
	return out, nil
}
