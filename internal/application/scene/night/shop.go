package night

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/scene"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
)

var shopKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// Shop spends kills on upgrades between nights.
type Shop struct {
	run *Run
	log zerolog.Logger
}

// NewShop creates the shop screen.
func NewShop(run *Run) *Shop {
	return &Shop{run: run, log: logging.Component(run.Log, "shop")}
}

func (s *Shop) Name() string { return "shop" }

func (s *Shop) Update(_ float64) (scene.Scene, error) {
	for i, k := range shopKeys {
		if i < len(progress.Purchases) && inpututil.IsKeyJustPressed(k) {
			s.Buy(progress.Purchases[i])
		}
	}
	if confirmPressed() {
		return s.Confirm(), nil
	}
	return nil, nil
}

// Buy tries one purchase and reports whether it went through.
func (s *Shop) Buy(p progress.Purchase) bool {
	st := s.run.State
	if !s.run.Shop.Buy(st, p) {
		s.log.Debug().Stringer("purchase", p).Int("currency", st.Currency()).Msg("purchase refused")
		return false
	}
	s.log.Info().Stringer("purchase", p).Int("currency", st.Currency()).Msg("purchased")
	return true
}

// Confirm starts the next night.
func (s *Shop) Confirm() scene.Scene {
	s.run.State.NextNight()
	return NewIntro(s.run)
}

// Lines is the text shown on the screen.
func (s *Shop) Lines() []string {
	st := s.run.State
	lines := []string{fmt.Sprintf("Kills to spend: %d", st.Currency()), ""}
	for i, o := range s.run.Shop.Offers(st) {
		if !o.Visible {
			continue
		}
		mark := " "
		if !o.Available {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("%d) %s  [%d] %s", i+1, o.Label, o.Cost, mark))
	}
	return append(lines, "", "Press Enter for the next night")
}

func (s *Shop) Draw(screen *ebiten.Image) {
	drawCentered(screen, s.Lines())
}

func (s *Shop) OnEnter() {}

func (s *Shop) OnExit() {}
