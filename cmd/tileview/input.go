package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tileengine/internal/application/system"
)

// keyInput turns terminal key presses into held controls. Terminals report
// presses and auto-repeat but no releases, so a key counts as held for a
// number of frames after its last press.
type keyInput struct {
	hold int
	held map[system.Key]int
}

func newKeyInput(holdFrames int) *keyInput {
	return &keyInput{hold: max(holdFrames, 1), held: make(map[system.Key]int)}
}

// Press records a key event. It returns false for keys that are not
// controls.
func (k *keyInput) Press(ev *tcell.EventKey) bool {
	key, ok := controlKey(ev)
	if !ok {
		return false
	}
	k.held[key] = k.hold
	return true
}

// GetInput returns the controls held this frame and ages every held key
func (k *keyInput) GetInput() system.Controls {
	var c system.Controls
	for key, frames := range k.held {
		switch key {
		case system.KeyLeft:
			c.Left = true
		case system.KeyRight:
			c.Right = true
		case system.KeyJump:
			c.Jump = true
		case system.KeyCrouch:
			c.Crouch = true
		case system.KeyTalk:
			c.Talk = true
		}
		if frames <= 1 {
			delete(k.held, key)
		} else {
			k.held[key] = frames - 1
		}
	}
	return c
}

func controlKey(ev *tcell.EventKey) (system.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return system.KeyLeft, true
	case tcell.KeyRight:
		return system.KeyRight, true
	case tcell.KeyUp:
		return system.KeyJump, true
	case tcell.KeyDown:
		return system.KeyCrouch, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return system.KeyLeft, true
		case 'd', 'D':
			return system.KeyRight, true
		case 'w', 'W':
			return system.KeyJump, true
		case 's', 'S':
			return system.KeyCrouch, true
		case ' ':
			return system.KeyTalk, true
		}
	}
	return 0, false
}
