package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Key names a logical game control
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyCrouch
	KeyTalk
)

// Controls is the state of every logical control for one frame
type Controls struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
	Talk   bool
}

// IsDown reports whether a control is held this frame
func (c Controls) IsDown(k Key) bool {
	switch k {
	case KeyLeft:
		return c.Left
	case KeyRight:
		return c.Right
	case KeyJump:
		return c.Jump
	case KeyCrouch:
		return c.Crouch
	case KeyTalk:
		return c.Talk
	default:
		return false
	}
}

// KeyLocker turns a held key into a single press: once a key is locked it
// stays locked until the key is seen released.
type KeyLocker struct {
	locked map[Key]bool
}

// NewKeyLocker creates an empty key locker
func NewKeyLocker() *KeyLocker {
	return &KeyLocker{locked: make(map[Key]bool)}
}

func (l *KeyLocker) Lock(k Key)   { l.locked[k] = true }
func (l *KeyLocker) Unlock(k Key) { delete(l.locked, k) }

// IsLocked reports whether the key has been consumed and not yet released
func (l *KeyLocker) IsLocked(k Key) bool { return l.locked[k] }

// Pressed returns true the first frame a key is down and locks it
func (l *KeyLocker) Pressed(c Controls, k Key) bool {
	if !c.IsDown(k) || l.IsLocked(k) {
		return false
	}
	l.Lock(k)
	return true
}

// Release unlocks every key that is no longer held
func (l *KeyLocker) Release(c Controls) {
	for k := range l.locked {
		if !c.IsDown(k) {
			delete(l.locked, k)
		}
	}
}

// Reset unlocks every key
func (l *KeyLocker) Reset() {
	clear(l.locked)
}

// InputSource produces the controls for the next frame
type InputSource interface {
	GetInput() Controls
}

// InputSystem reads controls from the keyboard.
// Arrow keys and WASD both drive movement; space talks.
type InputSystem struct{}

// NewInputSystem creates a new keyboard input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() Controls {
	return Controls{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Crouch: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Talk:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
