package render

import (
	"math"

	"github.com/lixenwraith/meshdrift/parameter"
)

// Raster is an alpha-composited dot buffer addressed in surface units
// One dot covers unit x unit surface units; the terminal host packs dots into braille cells,
// the snapshot host uses unit 1 so that a dot is a pixel
type Raster struct {
	width  int // dots
	height int // dots
	unit   float64
	bg     RGB

	dots []RGB

	// stamp[i] == gen marks dot i as already composited by the current primitive
	stamp []uint32
	gen   uint32
}

// NewRaster creates a raster of width x height dots, unit surface units per dot
// Non-positive unit falls back to 1
func NewRaster(width, height int, unit float64) *Raster {
	if unit <= 0 || math.IsNaN(unit) || math.IsInf(unit, 0) {
		unit = 1
	}
	r := &Raster{unit: unit, bg: RGBBlack}
	r.Resize(width, height)
	return r
}

// Resize adjusts dot dimensions, reallocates only if capacity insufficient, and clears
// Negative dimensions are treated as zero
func (r *Raster) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(r.dots) < size {
		r.dots = make([]RGB, size)
		r.stamp = make([]uint32, size)
	} else {
		r.dots = r.dots[:size]
		r.stamp = r.stamp[:size]
		clear(r.stamp)
	}
	r.width = width
	r.height = height
	r.gen = 0
	r.Clear()
}

// SetBackground sets the color used by Clear
func (r *Raster) SetBackground(bg RGB) {
	r.bg = bg
}

// Dots returns raster dimensions in dots
func (r *Raster) Dots() (width, height int) {
	return r.width, r.height
}

// Unit returns surface units per dot
func (r *Raster) Unit() float64 {
	return r.unit
}

// Size returns raster dimensions in surface units
func (r *Raster) Size() (width, height int) {
	return int(float64(r.width) * r.unit), int(float64(r.height) * r.unit)
}

// Clear fills every dot with the background color using exponential copy
func (r *Raster) Clear() {
	if len(r.dots) == 0 {
		return
	}
	r.dots[0] = r.bg
	for filled := 1; filled < len(r.dots); filled *= 2 {
		copy(r.dots[filled:], r.dots[:filled])
	}
}

// At returns the dot color at (x, y), background when out of bounds
func (r *Raster) At(x, y int) RGB {
	if !r.inBounds(x, y) {
		return r.bg
	}
	return r.dots[y*r.width+x]
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// begin opens a new primitive so that each dot composites at most once
func (r *Raster) begin() {
	r.gen++
	if r.gen == 0 {
		clear(r.stamp)
		r.gen = 1
	}
}

func (r *Raster) plot(x, y int, c RGB, alpha float64) {
	if !r.inBounds(x, y) {
		return
	}
	idx := y*r.width + x
	if r.stamp[idx] == r.gen {
		return
	}
	r.stamp[idx] = r.gen
	r.dots[idx] = Blend(r.dots[idx], c, alpha)
}

// toDot converts a surface coordinate to dot space
func (r *Raster) toDot(v float64) float64 {
	return v / r.unit
}

// floorDot converts a dot-space coordinate to a dot index, saturating instead of overflowing
func floorDot(v float64) int {
	switch {
	case math.IsNaN(v):
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(v))
}

// StrokeLine composites a one-dot-wide segment using DDA stepping
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	r.begin()

	fx0, fy0 := r.toDot(x0), r.toDot(y0)
	fx1, fy1 := r.toDot(x1), r.toDot(y1)
	dx, dy := fx1-fx0, fy1-fy0

	steps := math.Ceil(max(math.Abs(dx), math.Abs(dy)))
	if steps < 1 || math.IsNaN(steps) {
		r.plot(floorDot(fx0), floorDot(fy0), c, alpha)
		return
	}
	// Segment is bounded by the raster diagonal for any on-surface endpoints
	limit := float64(r.width + r.height + 2)
	if steps > 4*limit {
		steps = 4 * limit
	}

	n := int(steps)
	sx, sy := dx/steps, dy/steps
	for i := 0; i <= n; i++ {
		fi := float64(i)
		r.plot(floorDot(fx0+sx*fi), floorDot(fy0+sy*fi), c, alpha)
	}
}

// StrokeCircle composites a one-dot-wide ring by angular sampling
func (r *Raster) StrokeCircle(cx, cy, radius float64, c RGB, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	r.begin()

	fcx, fcy := r.toDot(cx), r.toDot(cy)
	rd := r.toDot(radius)

	samples := int(math.Ceil(2 * math.Pi * rd * parameter.CircleStrokeSamplesPerDot))
	samples = max(samples, 8)
	step := 2 * math.Pi / float64(samples)
	for i := 0; i < samples; i++ {
		a := step * float64(i)
		r.plot(floorDot(fcx+rd*math.Cos(a)), floorDot(fcy+rd*math.Sin(a)), c, alpha)
	}
}

// FillCircle composites every dot whose center lies inside the disc
// The dot containing the center is always covered so sub-dot radii stay visible
func (r *Raster) FillCircle(cx, cy, radius float64, c RGB, alpha float64) {
	if alpha <= 0 || radius < 0 {
		return
	}
	r.begin()

	fcx, fcy := r.toDot(cx), r.toDot(cy)
	rd := r.toDot(radius)
	rdSq := rd * rd

	r.plot(floorDot(fcx), floorDot(fcy), c, alpha)

	minX, maxX := max(floorDot(fcx-rd), 0), min(floorDot(fcx+rd), r.width-1)
	minY, maxY := max(floorDot(fcy-rd), 0), min(floorDot(fcy+rd), r.height-1)
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - fcy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - fcx
			if dx*dx+dy*dy <= rdSq {
				r.plot(x, y, c, alpha)
			}
		}
	}
}
