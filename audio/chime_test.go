package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/meshdrift/parameter"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		if len(out) > 10*int(sampleRate) {
			t.Fatal("chime did not terminate")
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	return out
}

func TestChimeIsFinite(t *testing.T) {
	chime, err := NewChime(sampleRate)
	if err != nil {
		t.Fatalf("NewChime: %v", err)
	}

	samples := drain(t, chime)
	if want := sampleRate.N(parameter.ChimeDuration); len(samples) != want {
		t.Errorf("chime length = %d samples, want %d", len(samples), want)
	}
}

func TestChimeEnvelope(t *testing.T) {
	chime, err := NewChime(sampleRate)
	if err != nil {
		t.Fatalf("NewChime: %v", err)
	}
	samples := drain(t, chime)

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want silent attack start", samples[0][0])
	}

	peak := 0.0
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("chime is silent")
	}

	// Release keeps the tail well below the peak
	tail := 0.0
	for _, s := range samples[len(samples)-100:] {
		tail = math.Max(tail, math.Abs(s[0]))
	}
	if tail > peak/4 {
		t.Errorf("tail peak %v not below quarter of peak %v", tail, peak)
	}
}

func TestChimeRejectsLowSampleRate(t *testing.T) {
	if _, err := NewChime(beep.SampleRate(1000)); err == nil {
		t.Error("NewChime at 1kHz succeeded, want Nyquist error")
	}
}
