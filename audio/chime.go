package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/meshdrift/parameter"
)

// Chime envelope shape
const (
	chimeAttack  = 0.005 // seconds
	chimeRelease = 30.0  // exponential decay rate per second
)

// envelope applies a short linear attack and exponential release to a mono source
type envelope struct {
	src beep.Streamer
	sr  beep.SampleRate
	pos int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		gain := math.Exp(-t * chimeRelease)
		if t < chimeAttack {
			gain *= t / chimeAttack
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.src.Err()
}

// NewChime returns the finite pointer-enter cue at the given sample rate
func NewChime(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, parameter.ChimeFrequency)
	if err != nil {
		return nil, fmt.Errorf("chime tone: %w", err)
	}

	shaped := &envelope{src: sine, sr: sr}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(parameter.ChimeDuration), shaped),
		Base:     2,
		Volume:   parameter.ChimeVolume,
	}, nil
}
