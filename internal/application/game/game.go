// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileengine/internal/application/scene"
	"github.com/younwookim/tileengine/internal/infrastructure/render"
)

var colorBG = color.RGBA{0, 0, 0, 255}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	// BeforeUpdate runs at the start of every frame, before the scene.
	// The host uses it to apply map file changes between frames.
	BeforeUpdate func() error
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.BeforeUpdate != nil {
		if err := g.BeforeUpdate(); err != nil {
			return err
		}
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil && next != g.current {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	canvas := render.NewEbiten(screen)
	canvas.Clear(colorBG)
	g.current.Draw(canvas)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the scene being played
func (g *Game) Current() scene.Scene { return g.current }

// SetDT sets the delta time used for updates.
// The host sets it from the configured tick rate.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
