package mesh

import (
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pointer is a last-write-wins cell holding the pointer position or its absence
// Safe for one writer goroutine and one reader goroutine; the zero value is absent
type Pointer struct {
	pos atomic.Pointer[r2.Vec]
}

// Move stores a surface-local position, returns true if the pointer was absent before
func (p *Pointer) Move(x, y float64) (entered bool) {
	v := r2.Vec{X: x, Y: y}
	return p.pos.Swap(&v) == nil
}

// Leave marks the pointer absent, returns true if it was present before
func (p *Pointer) Leave() (left bool) {
	return p.pos.Swap(nil) != nil
}

// Load returns the current position and whether the pointer is present
func (p *Pointer) Load() (r2.Vec, bool) {
	v := p.pos.Load()
	if v == nil {
		return r2.Vec{}, false
	}
	return *v, true
}
