package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/parameter/visual"
)

// CellWriter is the subset of tcell.Screen needed to emit cells
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// NewBrailleRaster creates a raster sized for a cols x rows terminal
func NewBrailleRaster(cols, rows int, unit float64) *Raster {
	return NewRaster(cols*visual.BrailleCellWidth, rows*visual.BrailleCellHeight, unit)
}

// ResizeCells resizes the raster to cover a cols x rows terminal
func (r *Raster) ResizeCells(cols, rows int) {
	r.Resize(cols*visual.BrailleCellWidth, rows*visual.BrailleCellHeight)
}

// Cells returns the terminal dimensions covered by the raster
func (r *Raster) Cells() (cols, rows int) {
	cols = (r.width + visual.BrailleCellWidth - 1) / visual.BrailleCellWidth
	rows = (r.height + visual.BrailleCellHeight - 1) / visual.BrailleCellHeight
	return cols, rows
}

// CellCenter maps a terminal cell to the surface coordinate of its center
func (r *Raster) CellCenter(col, row int) (x, y float64) {
	x = (float64(col*visual.BrailleCellWidth) + float64(visual.BrailleCellWidth)/2) * r.unit
	y = (float64(row*visual.BrailleCellHeight) + float64(visual.BrailleCellHeight)/2) * r.unit
	return x, y
}

// BrailleCell packs the 2x4 dots of a cell into a braille rune
// Returns the rune and the color of the brightest lit dot; empty cells yield a space
func (r *Raster) BrailleCell(col, row int) (rune, RGB) {
	var bits rune
	var fg RGB
	brightest := -1.0

	baseX := col * visual.BrailleCellWidth
	baseY := row * visual.BrailleCellHeight
	for dy := 0; dy < visual.BrailleCellHeight; dy++ {
		for dx := 0; dx < visual.BrailleCellWidth; dx++ {
			x, y := baseX+dx, baseY+dy
			if !r.inBounds(x, y) {
				continue
			}
			c := r.dots[y*r.width+x]
			lum := c.Luminance() - r.bg.Luminance()
			if lum < parameter.BrailleDotThreshold {
				continue
			}
			bits |= visual.BrailleDotBits[dy][dx]
			if lum > brightest {
				brightest = lum
				fg = c
			}
		}
	}

	if bits == 0 {
		return ' ', r.bg
	}
	return visual.BrailleBase | bits, fg
}

// ColorFunc maps a dot color to a terminal color
type ColorFunc func(RGB) tcell.Color

// FlushBraille writes every cell of the raster to w
// A nil toColor emits true color
func (r *Raster) FlushBraille(w CellWriter, toColor ColorFunc) {
	if toColor == nil {
		toColor = ToColor
	}
	bg := toColor(r.bg)
	base := tcell.StyleDefault.Background(bg)

	cols, rows := r.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch, fg := r.BrailleCell(col, row)
			if ch == ' ' {
				w.SetContent(col, row, ' ', nil, base)
				continue
			}
			w.SetContent(col, row, ch, nil, base.Foreground(toColor(fg)))
		}
	}
}

// ToColor converts RGB to a tcell true color
// tcell downsamples to the palette when the terminal lacks true color
func ToColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
