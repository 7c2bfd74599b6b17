package level

// Viewport is the size of the visible screen area in pixels
type Viewport struct {
	Width  int
	Height int
}

// MidX returns the horizontal dead-zone midpoint
func (v Viewport) MidX() int { return v.Width / 2 }

// MidY returns the vertical dead-zone midpoint
func (v Viewport) MidY() int { return v.Height / 2 }
