package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws onto the ebiten image handed to Game.Draw. Target is rebound
// every frame.
type Screen struct {
	Width, Height int
	Target        *ebiten.Image
	Antialias     bool
}

func NewScreen(width, height int) *Screen {
	return &Screen{Width: width, Height: height, Antialias: true}
}

func (s *Screen) Size() (int, int) {
	return s.Width, s.Height
}

func (s *Screen) FillRect(x, y, width, height float64, c color.Color) {
	if s.Target == nil {
		return
	}
	vector.DrawFilledRect(s.Target, float32(x), float32(y), float32(width), float32(height), c, false)
}

// FillCircle skips non-positive radii, which vector cannot path.
func (s *Screen) FillCircle(cx, cy, radius float64, c color.Color) {
	if s.Target == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.Target, float32(cx), float32(cy), float32(radius), c, s.Antialias)
}
