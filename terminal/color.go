package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/meshdrift/config"
	"github.com/lixenwraith/meshdrift/render"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return config.ColorTrueColor
	}
	return config.Color256
}

// ParseColorMode resolves a configured mode name; "auto" detects from the environment
func ParseColorMode(name string) (ColorMode, error) {
	switch name {
	case config.ColorAuto, "":
		return DetectColorMode(), nil
	case config.ColorTrueColor:
		return ColorModeTrueColor, nil
	case config.Color256:
		return ColorMode256, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", name)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ColorFunc returns the cell color conversion for the mode
func (m ColorMode) ColorFunc() render.ColorFunc {
	if m == ColorModeTrueColor {
		return render.ToColor
	}
	return func(c render.RGB) tcell.Color {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// cubeStep returns the nearest cube coordinate for a channel value
func cubeStep(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return uint8((int(v)-35)/40) // 115..255 -> 2..5
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// Coordinates above 5 are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step in [0,23]
func Gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// RGBTo256 picks the closer of the nearest cube color and the nearest gray ramp entry
func RGBTo256(c render.RGB) uint8 {
	r, g, b := cubeStep(c.R), cubeStep(c.G), cubeStep(c.B)
	cr, cg, cb := cubeLevels[r], cubeLevels[g], cubeLevels[b]

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := 0
	if avg > 238 {
		step = 23
	} else if avg > 8 {
		step = (avg - 3) / 10
	}
	gray := 8 + 10*step

	if dist2(c, cr, cg, cb) <= dist2(c, gray, gray, gray) {
		return Cube256(r, g, b)
	}
	return Gray256(uint8(step))
}

func dist2(c render.RGB, r, g, b int) int {
	dr, dg, db := int(c.R)-r, int(c.G)-g, int(c.B)-b
	return dr*dr + dg*dg + db*db
}
