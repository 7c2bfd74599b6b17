package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/infrastructure/render"
)

var colorBG = color.RGBA{0, 0, 0, 255}

// viewer plays a stage on a terminal screen. The bottom row is a status
// line; the rest shows the game viewport scaled down to cells.
type viewer struct {
	screen tcell.Screen
	canvas *render.Terminal
	stage  *stage.Stage
	keys   *keyInput
	dt     float64
	frame  int

	// set by the player listener, handled after the frame
	finished bool
	attempts int
}

func newViewer(screen tcell.Screen, s *stage.Stage, keys *keyInput, dt float64) *viewer {
	v := &viewer{screen: screen, stage: s, keys: keys, dt: dt, attempts: 1}
	s.AddListener(v)
	v.resize()
	return v
}

func (v *viewer) OnLevelCompleted() { v.finished = true }
func (v *viewer) OnDeath()          { v.finished = true }

// resize picks the cell size that fits the whole viewport on screen
func (v *viewer) resize() {
	cols, rows := v.screen.Size()
	vp := v.stage.Map.Viewport()
	cw, ch := cellSize(vp.Width, vp.Height, cols, rows-1)
	v.canvas = render.NewTerminal(v.screen, cw, ch)
}

// cellSize returns how many pixels one cell covers so that w x h pixels
// fit in cols x rows cells
func cellSize(w, h, cols, rows int) (int, int) {
	cols, rows = max(cols, 1), max(rows, 1)
	return (w + cols - 1) / cols, (h + rows - 1) / rows
}

// handle applies one terminal event. It returns false when the viewer
// should quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			v.restart()
		default:
			v.keys.Press(ev)
		}
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

// tick runs one frame and starts over once the player left the level
func (v *viewer) tick() {
	v.stage.Update(v.keys.GetInput(), v.dt)
	v.frame++
	if v.finished {
		log.WithFields(log.Fields{
			"level":   v.stage.Name,
			"outcome": v.stage.Player.LevelState().String(),
			"frame":   v.frame,
		}).Info("attempt finished")
		v.restart()
	}
}

func (v *viewer) restart() {
	if err := v.stage.Reset(); err != nil {
		log.WithError(err).Error("failed to reset level")
		return
	}
	v.finished = false
	v.attempts++
}

func (v *viewer) draw() {
	v.screen.Clear()
	vp := v.stage.Map.Viewport()
	v.canvas.FillRect(0, 0, float64(vp.Width), float64(vp.Height), colorBG)
	v.stage.Draw(v.canvas)
	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawStatus() {
	_, rows := v.screen.Size()
	p := v.stage.Player
	status := fmt.Sprintf(" %s  try %d  x=%.0f y=%.0f  arrows/wasd move, space talk, r reset, q quit",
		v.stage.Name, v.attempts, p.X, p.Y)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		v.screen.SetContent(i, rows-1, r, nil, style)
	}
}
