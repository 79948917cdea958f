package parameter

import "time"

// Window host defaults
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "meshdrift"
)

// Snapshot host defaults
const (
	DefaultSnapshotWidth  = 800
	DefaultSnapshotHeight = 600
	DefaultSnapshotTicks  = 300
	DefaultSnapshotPath   = "meshdrift.png"
)

// Audio cue
const (
	ChimeSampleRate = 48000
	ChimeFrequency  = 880.0
	ChimeDuration   = 120 * time.Millisecond
	ChimeVolume     = -2.5 // beep effects.Volume exponent, base 2
)

// Logging
const (
	DefaultLogDir  = "logs"
	LogFileName    = "meshdrift.log"
	MaxLogFileSize = 10 * 1024 * 1024
)
