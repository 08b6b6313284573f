package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal rasterises onto a tcell screen. Each cell stands for a
// CellWidth x CellHeight block of logical pixels and is painted through its
// background color.
type Terminal struct {
	screen     tcell.Screen
	CellWidth  int
	CellHeight int
}

func NewTerminal(screen tcell.Screen, cellWidth, cellHeight int) *Terminal {
	return &Terminal{screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

// Size reports the logical pixel size of the current terminal.
func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	return cols * t.CellWidth, rows * t.CellHeight
}

// FillRect paints every cell whose centre lies inside the rectangle.
func (t *Terminal) FillRect(x, y, width, height float64, c color.Color) {
	c0, r0, c1, r1 := t.clip(x, y, x+width, y+height)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := t.centre(col, row)
			if px >= x && px < x+width && py >= y && py < y+height {
				t.blend(col, row, c)
			}
		}
	}
}

// FillCircle paints cells whose centre is within radius, plus the cell
// containing the centre so sub-cell circles stay visible.
func (t *Terminal) FillCircle(cx, cy, radius float64, c color.Color) {
	hc, hr := t.cellAt(cx, cy)
	t.blend(hc, hr, c)
	if radius <= 0 {
		return
	}

	c0, r0, c1, r1 := t.clip(cx-radius, cy-radius, cx+radius, cy+radius)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col == hc && row == hr {
				continue
			}
			px, py := t.centre(col, row)
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= radius*radius {
				t.blend(col, row, c)
			}
		}
	}
}

func (t *Terminal) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / float64(t.CellWidth))), int(math.Floor(y / float64(t.CellHeight)))
}

// clip returns the on-screen cell range covering the pixel box.
func (t *Terminal) clip(x0, y0, x1, y1 float64) (int, int, int, int) {
	cols, rows := t.screen.Size()
	c0, r0 := t.cellAt(x0, y0)
	c1, r1 := t.cellAt(x1, y1)
	return max(c0, 0), max(r0, 0), min(c1, cols-1), min(r1, rows-1)
}

func (t *Terminal) centre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(t.CellWidth), (float64(row) + 0.5) * float64(t.CellHeight)
}

// blend composites c over the cell's current background.
func (t *Terminal) blend(col, row int, c color.Color) {
	cols, rows := t.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}

	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	if src.A == 0 {
		return
	}

	_, _, style, _ := t.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	dr, dg, db := bg.RGB()
	if dr < 0 {
		dr, dg, db = 0, 0, 0
	}

	a := float64(src.A) / 255
	mix := func(s uint8, d int32) int32 {
		return int32(math.Round(float64(s)*a + float64(d)*(1-a)))
	}

	bgColor := tcell.NewRGBColor(mix(src.R, dr), mix(src.G, dg), mix(src.B, db))
	t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bgColor))
}
