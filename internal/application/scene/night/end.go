package night

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/content"
)

// End is shown once the player survives until sunrise.
type End struct {
	run *Run
}

// NewEnd creates the ending screen.
func NewEnd(run *Run) *End {
	return &End{run: run}
}

func (s *End) Name() string { return "end" }

// Update ends the game on confirm.
func (s *End) Update(_ float64) (scene.Scene, error) {
	if confirmPressed() {
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (s *End) Draw(screen *ebiten.Image) {
	lines := []string{"The End", ""}
	lines = append(lines, wrap(content.Ending.Text, 60)...)
	lines = append(lines, "", "- "+content.Ending.Author, "", "", "Press Enter")
	drawCentered(screen, lines)
}

func (s *End) OnEnter() {
	s.run.Log.Info().Int("night", s.run.State.Night).Int("totalKills", s.run.State.TotalKills).Msg("sunrise")
}

func (s *End) OnExit() {}
