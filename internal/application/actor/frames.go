package actor

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/younwookim/tileengine/internal/domain/entity"
)

// Actor colours. Frames are drawn as filled rectangles, so each kind gets
// its own colour and every frame of an animation a lighter shade of it.
var (
	colorCat         = color.RGBA{240, 160, 60, 255}
	colorCatDead     = color.RGBA{150, 90, 40, 255}
	colorBug         = color.RGBA{120, 60, 160, 255}
	colorDinosaur    = color.RGBA{60, 170, 80, 255}
	colorDinoShoot   = color.RGBA{200, 60, 40, 255}
	colorFireball    = colornames.Orangered
	colorPlatform    = color.RGBA{90, 200, 90, 255}
	colorGoldBox     = color.RGBA{230, 190, 40, 255}
	colorWalrus      = color.RGBA{140, 110, 90, 255}
	colorSpeechFill  = colornames.White
	colorSpeechLine  = colornames.Black
	colorSpeechLabel = colornames.Black
)

// sheet describes the frames cut from one sprite sheet
type sheet struct {
	width, height int
	scale         float64
	hit           entity.HitBounds
	flip          bool
}

func (s sheet) withHit(x, y float64, w, h int) sheet {
	s.hit = entity.HitBounds{X: x, Y: y, Width: w, Height: h}
	return s
}

func (s sheet) flipped() sheet {
	s.flip = true
	return s
}

// frames builds one frame per delay
func (s sheet) frames(clr color.RGBA, delays ...int) []entity.Frame {
	out := make([]entity.Frame, len(delays))
	for i, d := range delays {
		f := entity.NewFrame(s.width, s.height).
			WithScale(s.scale).
			WithDelay(d).
			WithFlip(s.flip).
			WithColor(shade(clr, i))
		if !s.hit.IsZero() {
			f = f.WithHit(s.hit.X, s.hit.Y, s.hit.Width, s.hit.Height)
		}
		out[i] = f
	}
	return out
}

// both adds name_RIGHT and name_LEFT animations, the left one mirrored
func (s sheet) both(anims entity.Animations, name string, clr color.RGBA, delays ...int) {
	anims[name+"_RIGHT"] = s.frames(clr, delays...)
	anims[name+"_LEFT"] = s.flipped().frames(clr, delays...)
}

func shade(c color.RGBA, i int) color.RGBA {
	k := min(i*24, 96)
	lift := func(v uint8) uint8 { return uint8(min(int(v)+k, 255)) }
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// facing returns the directional animation name for base
func facing(base string, d entity.Direction) string {
	if d == entity.Left {
		return base + "_LEFT"
	}
	return base + "_RIGHT"
}
