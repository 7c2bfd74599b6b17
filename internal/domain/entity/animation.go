package entity

// Animations maps an animation name to its frames
type Animations map[string][]Frame

// Animator plays named animations into a Sprite.
// Switching animation or advancing a frame replaces the sprite's frame,
// which re-derives its hit rectangle.
type Animator struct {
	anims   Animations
	current string
	index   int
	looped  bool
	timer   Timer
}

// NewAnimator creates an animator starting on the given animation
func NewAnimator(anims Animations, start string) Animator {
	a := Animator{anims: anims, current: start}
	a.timer.SetWaitTime(a.Frame().Delay)
	return a
}

// Current returns the name of the playing animation
func (a *Animator) Current() string { return a.current }

// Index returns the frame index within the playing animation
func (a *Animator) Index() int { return a.index }

// Looped reports whether the playing animation wrapped at least once
func (a *Animator) Looped() bool { return a.looped }

// IsLastFrame reports whether the last frame of the animation is showing
func (a *Animator) IsLastFrame() bool {
	return a.index == len(a.anims[a.current])-1
}

// Frame returns the frame currently selected
func (a *Animator) Frame() Frame {
	frames := a.anims[a.current]
	if len(frames) == 0 {
		return Frame{}
	}
	return frames[a.index]
}

// Play switches to the named animation and shows its first frame.
// Playing the animation that is already running keeps its progress.
func (a *Animator) Play(s *Sprite, name string) {
	if name == a.current {
		return
	}
	if _, ok := a.anims[name]; !ok {
		return
	}
	a.current = name
	a.Restart(s)
}

// Restart rewinds the current animation to its first frame
func (a *Animator) Restart(s *Sprite) {
	a.index = 0
	a.looped = false
	a.timer.SetWaitTime(a.Frame().Delay)
	s.SetFrame(a.Frame())
}

// Update advances the animation by dt seconds
func (a *Animator) Update(s *Sprite, dt float64) {
	frames := a.anims[a.current]
	if len(frames) <= 1 || frames[a.index].Delay <= 0 {
		return
	}
	a.timer.Tick(dt)
	if !a.timer.IsTimeUp() {
		return
	}
	a.index++
	if a.index >= len(frames) {
		a.index = 0
		a.looped = true
	}
	a.timer.SetWaitTime(frames[a.index].Delay)
	s.SetFrame(frames[a.index])
}
