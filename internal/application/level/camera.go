package level

import (
	"slices"

	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// Camera is the visible window onto a map. Its position is in world pixels
// and its size in whole tiles, with the pixels left over kept separately.
//
// Every frame it sweeps the map's entity lists, deciding which entities are
// active (simulated) this frame, and it draws only what is near the screen.
type Camera struct {
	X, Y          float64
	Width, Height int // tiles

	tileWidth, tileHeight int
	leftoverX, leftoverY  int
	updateRange           int

	activeEnemies     []Entity
	activeInteractive []InteractiveTile
	activeNPCs        []Entity
	obstacles         []system.Obstacle
}

// NewCamera creates a camera at (x, y) covering the viewport
func NewCamera(x, y float64, tileWidth, tileHeight int, vp Viewport, updateRange int) *Camera {
	return &Camera{
		X:           x,
		Y:           y,
		Width:       vp.Width / tileWidth,
		Height:      vp.Height / tileHeight,
		tileWidth:   tileWidth,
		tileHeight:  tileHeight,
		leftoverX:   vp.Width % tileWidth,
		leftoverY:   vp.Height % tileHeight,
		updateRange: updateRange,
	}
}

// EndBoundX returns the right edge of the visible area in world pixels
func (c *Camera) EndBoundX() float64 {
	return c.X + float64(c.Width*c.tileWidth+c.leftoverX)
}

// EndBoundY returns the bottom edge of the visible area in world pixels
func (c *Camera) EndBoundY() float64 {
	return c.Y + float64(c.Height*c.tileHeight+c.leftoverY)
}

// ScreenX converts a world x into a screen x
func (c *Camera) ScreenX(x float64) float64 {
	return float64(entity.Round(x) - entity.Round(c.X))
}

// ScreenY converts a world y into a screen y
func (c *Camera) ScreenY(y float64) float64 {
	return float64(entity.Round(y) - entity.Round(c.Y))
}

// TileIndex returns the grid position of the camera's top-left corner
func (c *Camera) TileIndex() (col, row int) {
	return entity.Round(c.X) / c.tileWidth, entity.Round(c.Y) / c.tileHeight
}

// ContainsUpdate reports whether r lies in the update window: the viewport
// grown by the update range on every side.
func (c *Camera) ContainsUpdate(r entity.Rect) bool {
	return c.contains(r, c.updateRange)
}

// ContainsDraw reports whether r lies in the draw window: the viewport grown
// by one tile on every side.
func (c *Camera) ContainsDraw(r entity.Rect) bool {
	return c.contains(r, 1)
}

func (c *Camera) contains(r entity.Rect, margin int) bool {
	mx := float64(c.tileWidth * margin)
	my := float64(c.tileHeight * margin)
	return c.X-mx < r.ScaledX2() &&
		c.EndBoundX()+mx > r.X &&
		c.Y-my < r.ScaledY2() &&
		c.EndBoundY()+my > r.Y
}

// Update animates the tiles in the update window, sweeps the entity lists
// and updates every entity found active.
func (c *Camera) Update(m *Map, ctx *Context) {
	c.updateTiles(m, ctx.DT)

	m.enemies, c.activeEnemies = sweep(c, m.enemies, c.activeEnemies[:0])
	m.interactive, c.activeInteractive = sweep(c, m.interactive, c.activeInteractive[:0])
	m.npcs, c.activeNPCs = sweep(c, m.npcs, c.activeNPCs[:0])

	c.obstacles = c.obstacles[:0]
	for _, t := range c.activeInteractive {
		c.obstacles = append(c.obstacles, t)
	}

	for _, e := range c.activeEnemies {
		e.Update(ctx)
	}
	for _, t := range c.activeInteractive {
		t.Update(ctx)
	}
	for _, n := range c.activeNPCs {
		n.Update(ctx)
	}
}

func (c *Camera) updateTiles(m *Map, dt float64) {
	col, row := c.TileIndex()
	k := c.updateRange
	for y := row - k; y <= row+c.Height+k; y++ {
		for x := col - k; x <= col+c.Width+k; x++ {
			if t := m.TileAt(x, y); t != nil {
				t.Update(dt)
			}
		}
	}
}

// sweep walks list in reverse applying the activation rules. Removed
// entities are spliced out; an active entity that leaves the update window
// goes inactive and, if respawnable, is reset to its spawn state once.
// It returns the kept list and the entities active this frame.
func sweep[T Entity](c *Camera, list []T, active []T) ([]T, []T) {
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		a := e.Activation()
		switch {
		case a.Status == entity.StatusRemoved:
			list = slices.Delete(list, i, i+1)
		case a.AlwaysUpdated || c.ContainsUpdate(e.Bounds()):
			active = append(active, e)
			a.Status = entity.StatusActive
		case a.Status == entity.StatusActive:
			a.Status = entity.StatusInactive
			if a.Respawnable {
				e.Initialize()
			}
		}
	}
	return list, active
}

// Draw draws the tiles and the active entities inside the draw window
func (c *Camera) Draw(canvas Canvas, m *Map) {
	col, row := c.TileIndex()
	for y := row - 1; y <= row+c.Height+1; y++ {
		for x := col - 1; x <= col+c.Width+1; x++ {
			if t := m.TileAt(x, y); t != nil {
				DrawSprite(canvas, c, &t.Sprite)
			}
		}
	}

	for _, e := range c.activeEnemies {
		c.drawEntity(canvas, e)
	}
	for _, t := range c.activeInteractive {
		c.drawEntity(canvas, t)
	}
	for _, n := range c.activeNPCs {
		c.drawEntity(canvas, n)
	}
}

func (c *Camera) drawEntity(canvas Canvas, e Entity) {
	if e.Activation().IsRemoved() || !c.ContainsDraw(e.Bounds()) {
		return
	}
	e.Draw(canvas, c)
}

// DrawSprite fills the sprite's drawn rectangle in its frame colour
func DrawSprite(canvas Canvas, cam *Camera, s *entity.Sprite) {
	b := s.Bounds()
	canvas.FillRect(cam.ScreenX(b.X), cam.ScreenY(b.Y), float64(b.ScaledWidth()), float64(b.ScaledHeight()), s.Frame().Color)
}
