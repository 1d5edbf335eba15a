package night

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/domain/progress"
)

// Dead reports how the night went.
type Dead struct {
	run      *Run
	kills    int
	survived float64
}

// NewDead captures the night's result before the shop changes the state.
func NewDead(run *Run) *Dead {
	return &Dead{
		run:      run,
		kills:    run.State.KillsThisNight,
		survived: run.State.SurvivedSeconds,
	}
}

func (s *Dead) Name() string { return "dead" }

func (s *Dead) Update(_ float64) (scene.Scene, error) {
	if confirmPressed() {
		return s.Confirm(), nil
	}
	return nil, nil
}

// Confirm opens the shop.
func (s *Dead) Confirm() scene.Scene {
	return NewShop(s.run)
}

// Summary is the text shown on the screen.
func (s *Dead) Summary() []string {
	return []string{
		"You died.",
		"",
		fmt.Sprintf("Kills: %d", s.kills),
		fmt.Sprintf("Survived: %s", progress.Clock(s.survived)),
		"",
		"Can you last until sunrise?",
		"",
		"Press Enter",
	}
}

func (s *Dead) Draw(screen *ebiten.Image) {
	drawCentered(screen, s.Summary())
}

func (s *Dead) OnEnter() {
	s.run.Log.Info().
		Int("night", s.run.State.Night).
		Int("kills", s.kills).
		Float64("survived", s.survived).
		Msg("night lost")
}

func (s *Dead) OnExit() {}
