// Package render implements the drawing surfaces the map and its entities
// draw on: an ebiten image for the game window and a tcell screen for the
// terminal viewer.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// textFace is shared by every canvas; a GoXFace caches its glyphs
var textFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Ebiten draws onto an ebiten image
type Ebiten struct {
	screen *ebiten.Image
}

// NewEbiten wraps the frame's screen image
func NewEbiten(screen *ebiten.Image) *Ebiten {
	return &Ebiten{screen: screen}
}

// Clear fills the whole image
func (c *Ebiten) Clear(clr color.Color) {
	c.screen.Fill(clr)
}

func (c *Ebiten) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Ebiten) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(c.screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// Text prints s with its top-left corner at (x, y)
func (c *Ebiten) Text(x, y float64, s string, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, textFace, op)
}
