package mesh

import "github.com/lixenwraith/meshdrift/render"

type lineCall struct {
	x0, y0, x1, y1 float64
	alpha          float64
}

type circleCall struct {
	cx, cy, r float64
	alpha     float64
	fill      bool
}

// recordingSurface captures draw calls for inspection
type recordingSurface struct {
	width, height int
	sizeCalls     int
	clears        int
	lines         []lineCall
	circles       []circleCall
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (r *recordingSurface) Size() (int, int) {
	r.sizeCalls++
	return r.width, r.height
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.lines = r.lines[:0]
	r.circles = r.circles[:0]
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, _ render.RGB, alpha float64) {
	r.lines = append(r.lines, lineCall{x0, y0, x1, y1, alpha})
}

func (r *recordingSurface) StrokeCircle(cx, cy, rad float64, _ render.RGB, alpha float64) {
	r.circles = append(r.circles, circleCall{cx, cy, rad, alpha, false})
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, _ render.RGB, alpha float64) {
	r.circles = append(r.circles, circleCall{cx, cy, rad, alpha, true})
}

func (r *recordingSurface) rings() []circleCall {
	var out []circleCall
	for _, c := range r.circles {
		if !c.fill {
			out = append(out, c)
		}
	}
	return out
}
