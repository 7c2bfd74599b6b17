package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws onto a tcell screen. World pixels are mapped onto cells of
// CellWidth x CellHeight pixels; a cell is painted when its centre lies in a
// filled rectangle.
type Terminal struct {
	screen     tcell.Screen
	CellWidth  int
	CellHeight int
}

// NewTerminal creates a canvas over screen with the given cell size in
// pixels. Terminal cells are about twice as tall as they are wide.
func NewTerminal(screen tcell.Screen, cellWidth, cellHeight int) *Terminal {
	return &Terminal{
		screen:     screen,
		CellWidth:  max(cellWidth, 1),
		CellHeight: max(cellHeight, 1),
	}
}

// Viewport returns the screen size in pixels
func (t *Terminal) Viewport() (width, height int) {
	w, h := t.screen.Size()
	return w * t.CellWidth, h * t.CellHeight
}

func (t *Terminal) FillRect(x, y, w, h float64, clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	t.cells(x, y, w, h, func(col, row int) {
		t.screen.SetContent(col, row, ' ', nil, style)
	})
}

// StrokeRect marks the cells on the rectangle's border. The line width is
// always one cell.
func (t *Terminal) StrokeRect(x, y, w, h, _ float64, clr color.Color) {
	c0, r0, c1, r1, ok := t.span(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(clr))
	for col := c0; col <= c1; col++ {
		for row := r0; row <= r1; row++ {
			if col != c0 && col != c1 && row != r0 && row != r1 {
				continue
			}
			_, _, cur, _ := t.screen.GetContent(col, row)
			_, bg, _ := cur.Decompose()
			t.screen.SetContent(col, row, '#', nil, style.Background(bg))
		}
	}
}

// Text writes s starting at the cell under (x, y), keeping the background
func (t *Terminal) Text(x, y float64, s string, clr color.Color) {
	col := int(math.Floor(x / float64(t.CellWidth)))
	row := int(math.Floor(y / float64(t.CellHeight)))
	fg := toTcell(clr)
	for _, r := range s {
		_, _, cur, _ := t.screen.GetContent(col, row)
		_, bg, _ := cur.Decompose()
		t.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		col++
	}
}

// cells calls fn for every on-screen cell whose centre is inside the rect
func (t *Terminal) cells(x, y, w, h float64, fn func(col, row int)) {
	c0, r0, c1, r1, ok := t.span(x, y, w, h)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fn(col, row)
		}
	}
}

// span returns the inclusive cell range covered by the rect, clipped to
// the screen
func (t *Terminal) span(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	cw, ch := float64(t.CellWidth), float64(t.CellHeight)
	c0 = int(math.Ceil(x/cw - 0.5))
	r0 = int(math.Ceil(y/ch - 0.5))
	c1 = int(math.Ceil((x+w)/cw-0.5)) - 1
	r1 = int(math.Ceil((y+h)/ch-0.5)) - 1

	sw, sh := t.screen.Size()
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, sw-1), min(r1, sh-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
