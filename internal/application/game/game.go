// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     zerolog.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, log zerolog.Logger) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		log:     log,
	}
	g.log.Info().Str("scene", initialScene.Name()).Msg("scene entered")
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.log.Info().Str("scene", g.current.Name()).Msg("game finished")
		return err
	}
	if err != nil {
		g.log.Error().Err(err).Str("scene", g.current.Name()).Msg("scene failed")
		return err
	}

	// Handle scene transition
	if next != nil {
		g.log.Info().
			Str("from", g.current.Name()).
			Str("to", next.Name()).
			Msg("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
