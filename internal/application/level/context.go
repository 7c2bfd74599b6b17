// Package level holds the tile map, its camera and the contracts that map
// entities implement to be activated, updated and drawn by the camera.
package level

import (
	"image/color"

	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// Entity is a dynamic map entity: enemy, interactive tile or NPC.
// The camera reads and writes its activation, resets it through
// Initialize and only updates or draws it while it is inside a window.
type Entity interface {
	Activation() *entity.Activation
	// Bounds is the drawn rectangle used for windowing
	Bounds() entity.Rect
	Initialize()
	Update(ctx *Context)
	Draw(c Canvas, cam *Camera)
}

// InteractiveTile is an entity that also takes part in tile collision
type InteractiveTile interface {
	Entity
	system.Obstacle
}

// Player is the subject the camera tracks and entities interact with
type Player interface {
	system.Collidable
	Hurt(by Entity)
	CompleteLevel()
	OnGround() bool
}

// Context carries everything an entity may use during one update.
// It replaces a stored back-reference from the entity to its map.
type Context struct {
	Map    *Map
	Player Player
	Input  system.Controls
	DT     float64 // seconds
}

// Grid returns the collision grid, or nil when there is no map
func (ctx *Context) Grid() system.Grid {
	if ctx == nil || ctx.Map == nil {
		return nil
	}
	return ctx.Map
}

// Canvas is the drawing surface entities issue their draw calls to.
// Coordinates are screen pixels.
type Canvas interface {
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	Text(x, y float64, s string, clr color.Color)
}

// Point is a pixel position
type Point struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
