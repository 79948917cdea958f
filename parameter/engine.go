package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS), simulation ticks are not delta-scaled
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameMeterSmoothing is the EMA weight of the newest frame sample
	FrameMeterSmoothing = 0.1

	// EventQueueSize is the capacity of the host event channel drained between frames
	EventQueueSize = 256

	// WindowTPS is the ebiten update rate for the window host
	WindowTPS = 60
)
