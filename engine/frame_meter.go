package engine

import (
	"time"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/status"
)

// FrameMeter tracks a smoothed frame rate and frame cost, publishing both to a registry
type FrameMeter struct {
	fps     *status.AtomicFloat
	frameMs *status.AtomicFloat
	ema     float64
}

// NewFrameMeter caches the registry metrics it writes
func NewFrameMeter(reg *status.Registry) *FrameMeter {
	return &FrameMeter{
		fps:     reg.Floats.Get(status.KeyFPS),
		frameMs: reg.Floats.Get(status.KeyFrameTime),
	}
}

// Observe records one frame interval dt and the time spent producing the frame
// Non-positive intervals are ignored
func (m *FrameMeter) Observe(dt, work time.Duration) {
	m.frameMs.Set(float64(work) / float64(time.Millisecond))
	if dt <= 0 {
		return
	}
	inst := 1.0 / dt.Seconds()
	if m.ema == 0 {
		m.ema = inst
	} else {
		m.ema += parameter.FrameMeterSmoothing * (inst - m.ema)
	}
	m.fps.Set(m.ema)
}

// FPS returns the smoothed frame rate
func (m *FrameMeter) FPS() float64 {
	return m.ema
}
