package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/lixenwraith/meshdrift/mesh"
)

// Diagnostic colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// reportError prints a startup failure with a hint for the known host failures
func reportError(err error) {
	log.Printf("fatal: %v", err)
	Bad.Fprintf(os.Stderr, "meshdrift: %v\n", err)

	switch {
	case errors.Is(err, mesh.ErrSurfaceUnavailable):
		fmt.Fprintln(os.Stderr, Subtle.Sprint("  No terminal to draw on. Try `meshdrift window` or `meshdrift snapshot`."))
	case errors.Is(err, mesh.ErrContextUnavailable):
		fmt.Fprintln(os.Stderr, Subtle.Sprint("  The display could not be initialized. Check TERM or the desktop session."))
	}
}
