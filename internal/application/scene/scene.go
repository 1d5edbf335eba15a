// Package scene defines the Scene interface for night screens.
//
// Each screen (intro, level, dead, shop, end) implements the Scene
// interface to handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one screen of a run.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup such as saving a recording.
	OnExit()
}
