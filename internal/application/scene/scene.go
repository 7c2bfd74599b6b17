// Package scene defines the Scene interface for game screens.
//
// Each screen (playing a level, the level result) implements the Scene
// interface to handle its own update logic and drawing.
package scene

import "github.com/younwookim/tileengine/internal/application/level"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene in screen pixels.
	Draw(c level.Canvas)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
