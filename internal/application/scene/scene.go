// Package scene defines the Scene interface for game screens.
//
// Each screen (playing, replay viewer, etc.) implements the Scene
// interface and owns its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions happen by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame. dt is the fixed step
	// duration in seconds. Returns the next scene if a transition is
	// needed, nil to stay, and an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene. Use it for cleanup and
	// saving state.
	OnExit()
}
