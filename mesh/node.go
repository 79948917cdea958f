package mesh

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/physics"
)

// Node is one drifting point
type Node struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Speed  float64 // nominal speed, restoring target of drift
	Radius float64
}

// NewNode creates a node at (x, y) moving at nominal speed in a uniformly random direction
func NewNode(x, y float64, rng *rand.Rand) Node {
	angle := rng.Float64() * 2 * math.Pi
	return Node{
		Pos:    r2.Vec{X: x, Y: y},
		Vel:    physics.FromPolar(parameter.NodeSpeed, angle),
		Speed:  parameter.NodeSpeed,
		Radius: parameter.NodeRadius,
	}
}

// Advance moves the node one tick and reflects velocity off the [0,width] x [0,height] bounds
// Bounds are checked against the updated position
func (n *Node) Advance(width, height int) {
	n.Pos = physics.Integrate(n.Pos, n.Vel)
	n.Vel = physics.ReflectBounds(n.Pos, n.Vel, width, height)
}

// drift decays velocity and nudges each axis slower than nominal speed by a random amount
func (n *Node) drift(rng *rand.Rand) {
	n.Vel = physics.Decay(n.Vel, parameter.VelocityDecay)
	if math.Abs(n.Vel.X) < n.Speed {
		n.Vel.X += (rng.Float64() - 0.5) * parameter.DriftNudge
	}
	if math.Abs(n.Vel.Y) < n.Speed {
		n.Vel.Y += (rng.Float64() - 0.5) * parameter.DriftNudge
	}
}
