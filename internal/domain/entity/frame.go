package entity

import "image/color"

// HitBounds is a hit rectangle relative to a frame's top-left corner,
// in unscaled frame pixels.
type HitBounds struct {
	X, Y          float64
	Width, Height int
}

// IsZero reports whether no hit bounds were declared
func (h HitBounds) IsZero() bool {
	return h.X == 0 && h.Y == 0 && h.Width == 0 && h.Height == 0
}

// Frame is one visual frame of an animation. It holds no position; the
// owning Sprite is the only place an entity's coordinates live.
type Frame struct {
	Width, Height int
	Scale         float64
	Hit           HitBounds
	Delay         int // milliseconds before advancing, 0 = hold
	FlipX         bool
	Color         color.RGBA
}

// NewFrame creates a frame whose hit bounds cover the whole image
func NewFrame(width, height int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Scale:  1,
		Color:  color.RGBA{255, 255, 255, 255},
	}
}

// WithScale returns a copy of the frame with a new uniform scale
func (f Frame) WithScale(scale float64) Frame {
	f.Scale = scale
	return f
}

// WithHit returns a copy of the frame with explicit hit bounds
func (f Frame) WithHit(x, y float64, width, height int) Frame {
	f.Hit = HitBounds{X: x, Y: y, Width: width, Height: height}
	return f
}

// WithDelay returns a copy of the frame with a display delay in milliseconds
func (f Frame) WithDelay(ms int) Frame {
	f.Delay = ms
	return f
}

// WithFlip returns a copy of the frame mirrored horizontally
func (f Frame) WithFlip(flip bool) Frame {
	f.FlipX = flip
	return f
}

// WithColor returns a copy of the frame drawn in the given colour
func (f Frame) WithColor(c color.RGBA) Frame {
	f.Color = c
	return f
}

// HitBounds returns the declared hit bounds, or the full frame if none
func (f Frame) HitBounds() HitBounds {
	if f.Hit.IsZero() {
		return HitBounds{Width: f.Width, Height: f.Height}
	}
	return f.Hit
}

func (f Frame) scale() float64 {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}
