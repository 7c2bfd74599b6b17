package entity

import (
	"fmt"
	"math"
)

// Round rounds half away from zero, the rounding every collision boundary
// in this package is defined with.
func Round(f float64) int {
	return int(math.Round(f))
}

// Rect is an axis-aligned box with sub-pixel position and integer size.
// Comparisons are made on the scaled size with corners rounded to pixels.
type Rect struct {
	X, Y          float64
	Width, Height int
	Scale         float64
}

// NewRect creates a rect with a scale of 1
func NewRect(x, y float64, width, height int) Rect {
	return NewScaledRect(x, y, width, height, 1)
}

// NewScaledRect creates a rect with the given scale.
// Negative sizes are clamped to zero and a non-positive scale falls back to 1.
func NewScaledRect(x, y float64, width, height int, scale float64) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if scale <= 0 {
		scale = 1
	}
	return Rect{X: x, Y: y, Width: width, Height: height, Scale: scale}
}

func (r Rect) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

func (r Rect) X1() float64 { return r.X }
func (r Rect) Y1() float64 { return r.Y }
func (r Rect) X2() float64 { return r.X + float64(r.Width) }
func (r Rect) Y2() float64 { return r.Y + float64(r.Height) }

// ScaledWidth returns the width multiplied by scale, rounded to a pixel
func (r Rect) ScaledWidth() int {
	return Round(float64(r.Width) * r.scale())
}

// ScaledHeight returns the height multiplied by scale, rounded to a pixel
func (r Rect) ScaledHeight() int {
	return Round(float64(r.Height) * r.scale())
}

func (r Rect) ScaledX2() float64 { return r.X + float64(r.ScaledWidth()) }
func (r Rect) ScaledY2() float64 { return r.Y + float64(r.ScaledHeight()) }

// MoveX moves the rect along the x axis in place
func (r *Rect) MoveX(dx float64) { r.X += dx }

// MoveY moves the rect along the y axis in place
func (r *Rect) MoveY(dy float64) { r.Y += dy }

// SetLocation moves the rect's top-left corner to (x, y)
func (r *Rect) SetLocation(x, y float64) {
	r.X = x
	r.Y = y
}

// corners returns the rounded corners of the scaled rect
func (r Rect) corners() (x1, y1, x2, y2 int) {
	return Round(r.X), Round(r.Y), Round(r.ScaledX2()), Round(r.ScaledY2())
}

// Intersects reports whether the two rects share interior area.
// Edges that only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	ax1, ay1, ax2, ay2 := r.corners()
	bx1, by1, bx2, by2 := other.corners()
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}

// Overlaps is the non-strict form of Intersects: touching edges count.
// Used to detect an entity standing exactly on top of another.
func (r Rect) Overlaps(other Rect) bool {
	ax1, ay1, ax2, ay2 := r.corners()
	bx1, by1, bx2, by2 := other.corners()
	return ax1 <= bx2 && ax2 >= bx1 && ay1 <= by2 && ay2 >= by1
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(x=%.2f y=%.2f w=%d h=%d)", r.X, r.Y, r.ScaledWidth(), r.ScaledHeight())
}
