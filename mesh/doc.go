// Package mesh simulates drifting nodes linked by proximity lines and pushed away by a pointer.
//
// A Simulation owns a fixed set of nodes and draws them onto a Surface each frame:
// pointer forces, one tick of motion with boundary reflection, connection lines for
// close pairs, then the nodes and the pointer ring. Scheduling belongs to the host;
// Tick runs one complete frame synchronously.
package mesh
