package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/meshdrift/render"
)

// Canvas adapts an ebiten screen image to mesh.Surface
// Size follows Layout; primitives are dropped while no image is bound
type Canvas struct {
	dst           *ebiten.Image
	width, height int
	bg            render.RGB
}

// NewCanvas creates an unbound canvas of the given size
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// SetSize records the logical screen size; negative sizes become zero
func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
}

// Bind directs drawing to dst for the current frame
func (c *Canvas) Bind(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Clear() {
	if c.dst == nil {
		return
	}
	c.dst.Fill(nrgba(c.bg, 1))
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, clr render.RGB, alpha float64) {
	if c.dst == nil {
		return
	}
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, nrgba(clr, alpha), true)
}

func (c *Canvas) StrokeCircle(cx, cy, r float64, clr render.RGB, alpha float64) {
	if c.dst == nil {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), 1, nrgba(clr, alpha), true)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr render.RGB, alpha float64) {
	if c.dst == nil {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), nrgba(clr, alpha), true)
}

// nrgba converts a color and opacity in [0,1] to a non-premultiplied color
func nrgba(c render.RGB, alpha float64) color.NRGBA {
	a := alpha
	if !(a > 0) {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
