package mesh

import "github.com/lixenwraith/meshdrift/render"

// Surface is the drawing target of a simulation
// Dimensions are in surface units and may change between frames
type Surface interface {
	Size() (width, height int)
	Clear()
	StrokeLine(x0, y0, x1, y1 float64, c render.RGB, alpha float64)
	StrokeCircle(cx, cy, r float64, c render.RGB, alpha float64)
	FillCircle(cx, cy, r float64, c render.RGB, alpha float64)
}
