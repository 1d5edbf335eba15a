package night

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/content"
)

// Intro shows a quote before each night.
type Intro struct {
	run   *Run
	quote content.Quote
}

// NewIntro creates the intro screen.
func NewIntro(run *Run) *Intro {
	return &Intro{run: run}
}

func (s *Intro) Name() string { return "intro" }

func (s *Intro) Update(_ float64) (scene.Scene, error) {
	if confirmPressed() {
		return s.Confirm(), nil
	}
	return nil, nil
}

// Confirm starts the night.
func (s *Intro) Confirm() scene.Scene {
	return NewLevel(s.run)
}

// Quote returns the quote picked on enter.
func (s *Intro) Quote() content.Quote {
	return s.quote
}

func (s *Intro) Draw(screen *ebiten.Image) {
	lines := []string{fmt.Sprintf("Night %d", s.run.State.Night), ""}
	lines = append(lines, wrap(s.quote.Text, 60)...)
	if s.quote.Author != "" {
		lines = append(lines, "", "- "+s.quote.Author)
	}
	lines = append(lines, "", "", "Press Enter")
	drawCentered(screen, lines)
}

func (s *Intro) OnEnter() {
	s.quote = s.run.NextQuote()
}

func (s *Intro) OnExit() {}
