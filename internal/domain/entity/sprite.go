package entity

// HitBoxer is anything that exposes a hit rectangle in world pixels
type HitBoxer interface {
	HitRect() Rect
}

// Sprite owns an entity's position and its current frame.
// The drawn rectangle comes from the frame size; the hit rectangle comes
// from the frame's hit bounds, both multiplied by the frame scale.
type Sprite struct {
	X, Y  float64
	frame Frame
}

// NewSprite creates a sprite at (x, y) showing the given frame
func NewSprite(x, y float64, frame Frame) Sprite {
	return Sprite{X: x, Y: y, frame: frame}
}

// Frame returns the frame currently shown
func (s *Sprite) Frame() Frame { return s.frame }

// SetFrame swaps the current frame; the hit rect follows the new frame
func (s *Sprite) SetFrame(f Frame) { s.frame = f }

// Scale returns the uniform scale of the current frame
func (s *Sprite) Scale() float64 { return s.frame.scale() }

// Bounds returns the drawn rectangle in world pixels
func (s *Sprite) Bounds() Rect {
	return NewScaledRect(s.X, s.Y, s.frame.Width, s.frame.Height, s.frame.scale())
}

// HitRect returns the collision rectangle in world pixels.
// The result is pre-scaled (Scale 1) so X2/Y2 are the true hit edges.
func (s *Sprite) HitRect() Rect {
	hb := s.frame.HitBounds()
	sc := s.frame.scale()
	scaled := NewScaledRect(0, 0, hb.Width, hb.Height, sc)
	return NewRect(s.X+hb.X*sc, s.Y+hb.Y*sc, scaled.ScaledWidth(), scaled.ScaledHeight())
}

// ScaledWidth returns the drawn width in pixels
func (s *Sprite) ScaledWidth() int { return s.Bounds().ScaledWidth() }

// ScaledHeight returns the drawn height in pixels
func (s *Sprite) ScaledHeight() int { return s.Bounds().ScaledHeight() }

func (s *Sprite) MoveX(dx float64) { s.X += dx }
func (s *Sprite) MoveY(dy float64) { s.Y += dy }

// SetLocation places the sprite's top-left corner
func (s *Sprite) SetLocation(x, y float64) {
	s.X = x
	s.Y = y
}

// Intersects compares hit rectangles strictly
func (s *Sprite) Intersects(other HitBoxer) bool {
	return s.HitRect().Intersects(other.HitRect())
}

// Overlaps compares hit rectangles, counting touching edges
func (s *Sprite) Overlaps(other HitBoxer) bool {
	return s.HitRect().Overlaps(other.HitRect())
}
