// Package terminal hosts the mesh in a terminal using tcell.
//
// The raster behind the simulation has 2x4 braille dots per cell. Mouse motion
// is reported as a pointer at the center of the hovered cell; losing focus
// removes the pointer. Rendering runs on the engine loop, input arrives from a
// dedicated poll goroutine.
package terminal
