// Package result provides the screens shown between level attempts: the
// level cleared banner and the game over prompt.
package result

import (
	"image/color"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/scene"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// ClearedDisplayMs is how long the level cleared banner stays up
const ClearedDisplayMs = 2500

var (
	colorOverlay = color.RGBA{0, 0, 0, 200}
	colorCleared = colornames.Gold
	colorDied    = colornames.Tomato
	colorHint    = colornames.Lightgray
)

// Kind tells which result is shown
type Kind int

const (
	Cleared Kind = iota
	GameOver
)

// Continue builds the scene that follows the result screen
type Continue func() (scene.Scene, error)

// Result is a full screen message over a finished level attempt
type Result struct {
	kind    Kind
	level   string
	input   system.InputSource
	keys    *system.KeyLocker
	timer   entity.Timer
	next    Continue
	screenW int
	screenH int
}

// NewCleared shows the cleared banner for level and moves on to next once
// it times out.
func NewCleared(level string, screenW, screenH int, next Continue) *Result {
	r := &Result{
		kind:    Cleared,
		level:   level,
		next:    next,
		screenW: screenW,
		screenH: screenH,
	}
	r.timer.SetWaitTime(ClearedDisplayMs)
	return r
}

// NewGameOver waits for the talk key and then calls retry
func NewGameOver(level string, input system.InputSource, screenW, screenH int, retry Continue) *Result {
	return &Result{
		kind:    GameOver,
		level:   level,
		input:   input,
		keys:    system.NewKeyLocker(),
		next:    retry,
		screenW: screenW,
		screenH: screenH,
	}
}

func (r *Result) Kind() Kind { return r.kind }

// OnEnter locks the talk key so a press held over from play does not skip
// the prompt.
func (r *Result) OnEnter() {
	if r.keys != nil {
		r.keys.Lock(system.KeyTalk)
	}
	log.WithFields(log.Fields{"level": r.level, "cleared": r.kind == Cleared}).Debug("result screen")
}

func (r *Result) OnExit() {}

// Update implements scene.Scene
func (r *Result) Update(dt float64) (scene.Scene, error) {
	switch r.kind {
	case Cleared:
		r.timer.Tick(dt)
		if r.timer.IsTimeUp() {
			return r.next()
		}
	case GameOver:
		in := r.input.GetInput()
		pressed := r.keys.Pressed(in, system.KeyTalk)
		r.keys.Release(in)
		if pressed {
			return r.next()
		}
	}
	return nil, nil
}

// Draw implements scene.Scene
func (r *Result) Draw(c level.Canvas) {
	w, h := float64(r.screenW), float64(r.screenH)
	c.FillRect(0, 0, w, h, colorOverlay)

	x, y := w/2-60, h/2-20
	if r.kind == Cleared {
		c.Text(x, y, "LEVEL CLEARED", colorCleared)
		c.Text(x, y+20, r.level, colorHint)
		return
	}
	c.Text(x, y, "YOU DIED", colorDied)
	c.Text(x, y+20, "Press Space to try again", colorHint)
}
