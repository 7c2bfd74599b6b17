package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func createTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.Screen, col, row int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := screen.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestTerminal_FillRect(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)

	// one 48px tile is 4x2 cells
	term.FillRect(0, 0, 48, 48, red)

	want := tcell.NewRGBColor(255, 0, 0)
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			_, _, bg := cellAt(screen, col, row)
			assert.Equal(t, want, bg, "cell %d,%d", col, row)
		}
	}
	_, _, bg := cellAt(screen, 4, 0)
	assert.NotEqual(t, want, bg)
	_, _, bg = cellAt(screen, 0, 2)
	assert.NotEqual(t, want, bg)
}

func TestTerminal_FillRectUsesCellCentres(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)
	want := tcell.NewRGBColor(255, 0, 0)

	// covers the centre of column 1 (x=18) but not of column 0 (x=6)
	term.FillRect(7, 0, 12, 24, red)
	_, _, bg := cellAt(screen, 0, 0)
	assert.NotEqual(t, want, bg)
	_, _, bg = cellAt(screen, 1, 0)
	assert.Equal(t, want, bg)
}

func TestTerminal_ClipsOffscreen(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)

	assert.NotPanics(t, func() {
		term.FillRect(-100, -100, 1000, 1000, red)
		term.StrokeRect(-48, -48, 96, 96, 2, red)
		term.FillRect(5000, 5000, 48, 48, red)
		term.Text(-30, 0, "clipped", red)
	})
	_, _, bg := cellAt(screen, 19, 9)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
}

func TestTerminal_StrokeRect(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)

	term.FillRect(0, 0, 60, 72, red)
	term.StrokeRect(0, 0, 60, 72, 2, color.Black)

	r, _, bg := cellAt(screen, 0, 0)
	assert.Equal(t, '#', r)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg, "background kept under the border")
	r, _, _ = cellAt(screen, 4, 2)
	assert.Equal(t, '#', r)
	r, _, _ = cellAt(screen, 2, 1)
	assert.Equal(t, ' ', r, "inside is not stroked")
}

func TestTerminal_Text(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)

	term.FillRect(0, 0, 240, 24, red)
	term.Text(24, 0, "Hi", color.White)

	r, fg, bg := cellAt(screen, 2, 0)
	assert.Equal(t, 'H', r)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
	r, _, _ = cellAt(screen, 3, 0)
	assert.Equal(t, 'i', r)
}

func TestTerminal_Viewport(t *testing.T) {
	screen := createTestScreen(t)
	term := NewTerminal(screen, 12, 24)

	w, h := term.Viewport()
	assert.Equal(t, 240, w)
	assert.Equal(t, 240, h)
}
