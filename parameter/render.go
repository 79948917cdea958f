package parameter

// Opacity of each drawn primitive, white on black
const (
	// ConnectionAlphaMax is the opacity of a connection between coincident nodes
	ConnectionAlphaMax = 0.2

	// PushRingAlpha is the opacity of the pointer radius ring
	PushRingAlpha = 0.1

	// NodeAlpha is the fill opacity of a node
	NodeAlpha = 0.8
)

// Terminal raster
const (
	// DefaultUnitsPerDot is the number of surface units covered by one braille dot
	// A 100x30 terminal yields a 200x120 dot raster, 800x480 surface units
	DefaultUnitsPerDot = 4.0

	// BrailleDotThreshold is the minimum dot luminance in [0,1] that lights a braille dot
	BrailleDotThreshold = 0.02

	// CircleStrokeSamplesPerDot controls angular sampling density of stroked circles
	CircleStrokeSamplesPerDot = 2.0
)
