package terminal

import (
	"io"
	"os"
)

// Sequences undoing what a crashed screen may have left enabled
var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiFocusOff      = []byte("\x1b[?1004l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiRIS           = []byte("\x1bc")
)

// EmergencyReset restores the terminal without going through tcell
// Used from panic handlers where the screen state is unknown
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiFocusOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
