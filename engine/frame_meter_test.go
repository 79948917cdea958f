package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/meshdrift/status"
)

func TestFrameMeter(t *testing.T) {
	reg := status.NewRegistry()
	m := NewFrameMeter(reg)

	m.Observe(0, time.Millisecond)
	if m.FPS() != 0 {
		t.Errorf("Expected zero interval to be ignored, got %f", m.FPS())
	}

	m.Observe(20*time.Millisecond, 2*time.Millisecond)
	if math.Abs(m.FPS()-50) > 1e-9 {
		t.Errorf("Expected first sample to seed 50 fps, got %f", m.FPS())
	}

	for i := 0; i < 200; i++ {
		m.Observe(10*time.Millisecond, time.Millisecond)
	}
	if math.Abs(m.FPS()-100) > 0.01 {
		t.Errorf("Expected EMA to converge to 100 fps, got %f", m.FPS())
	}
	if got := reg.Floats.Get(status.KeyFPS).Get(); got != m.FPS() {
		t.Errorf("Expected published fps %f, got %f", m.FPS(), got)
	}
	if got := reg.Floats.Get(status.KeyFrameTime).Get(); got != 1 {
		t.Errorf("Expected published frame time 1ms, got %f", got)
	}
}
