package actor

import (
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// npc is a map entity the player can talk to. Talking shows its message
// for talkTime milliseconds.
type npc struct {
	mapEntity
	message  string
	talkTime int
	talkedTo bool
	timer    entity.Timer
}

func (n *npc) TalkedTo() bool  { return n.talkedTo }
func (n *npc) Message() string { return n.message }

func (n *npc) checkTalkedTo(ctx *level.Context) {
	n.timer.Tick(ctx.DT)
	if ctx.Player != nil && ctx.Input.Talk && n.Intersects(ctx.Player.Body()) {
		n.talkedTo = true
		n.timer.SetWaitTime(n.talkTime)
	}
	if n.talkedTo && n.timer.IsTimeUp() {
		n.talkedTo = false
	}
}

const walrusTalkMs = 5000

// Walrus raises its tail while it is being talked to
type Walrus struct {
	npc
}

// NewWalrus creates a walrus at (x, y) that says message
func NewWalrus(x, y float64, message string) *Walrus {
	walrus := sheet{width: 24, height: 24, scale: 3}.flipped()
	anims := entity.Animations{
		"TAIL_DOWN": walrus.frames(colorWalrus, 0),
		"TAIL_UP":   walrus.frames(shade(colorWalrus, 2), 0),
	}
	if message == "" {
		message = "Hello!"
	}

	w := &Walrus{}
	w.mapEntity = newMapEntity(x, y, anims, "TAIL_DOWN")
	w.message = message
	w.talkTime = walrusTalkMs
	return w
}

func (w *Walrus) Initialize() {
	w.reset("TAIL_DOWN")
	w.talkedTo = false
}

func (w *Walrus) Update(ctx *level.Context) {
	if w.talkedTo {
		w.anim.Play(&w.Sprite, "TAIL_UP")
	} else {
		w.anim.Play(&w.Sprite, "TAIL_DOWN")
	}
	w.anim.Update(&w.Sprite, ctx.DT)
	w.checkTalkedTo(ctx)
}

// Draw draws the walrus and, while talked to, a speech box above it
func (w *Walrus) Draw(c level.Canvas, cam *level.Camera) {
	w.mapEntity.Draw(c, cam)
	if !w.talkedTo {
		return
	}

	x, y := cam.ScreenX(w.X), cam.ScreenY(w.Y)
	c.FillRect(x-2, y-24, 40, 25, colorSpeechFill)
	c.StrokeRect(x-2, y-24, 40, 25, 2, colorSpeechLine)
	c.Text(x+2, y-22, w.message, colorSpeechLabel)
}
