package mesh

import (
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/physics"
	"github.com/lixenwraith/meshdrift/render"
	"github.com/lixenwraith/meshdrift/status"
)

// Simulation owns the nodes, the pointer cell and the surface they are drawn on
// Not safe for concurrent use except through Pointer, which hosts may write from any goroutine
type Simulation struct {
	surface Surface
	nodes   []Node
	pointer Pointer
	rng     *rand.Rand
	grid    pairGrid

	// pointer position as seen by the last Step, used by DrawNodes
	seen        r2.Vec
	seenPresent bool

	frames      int64
	connections int

	metrics *frameMetrics
}

// frameMetrics caches registry pointers so the frame loop writes atomics directly
type frameMetrics struct {
	frames      *atomic.Int64
	connections *atomic.Int64
	pointer     *atomic.Bool
}

// Option configures a Simulation at construction
type Option func(*Simulation)

// WithRand sets the random source used for placement, direction and drift
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithSeed seeds a PCG random source, equivalent to WithRand on a fresh generator
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithMetrics publishes frame counters into reg
func WithMetrics(reg *status.Registry) Option {
	return func(s *Simulation) {
		if reg == nil {
			return
		}
		s.metrics = &frameMetrics{
			frames:      reg.Ints.Get(status.KeyFrames),
			connections: reg.Ints.Get(status.KeyConnections),
			pointer:     reg.Bools.Get(status.KeyPointer),
		}
	}
}

// New creates a simulation with NodeCount nodes scattered over the current surface
func New(surface Surface, opts ...Option) (*Simulation, error) {
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}

	s := &Simulation{surface: surface}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	width, height := surface.Size()
	s.nodes = make([]Node, parameter.NodeCount)
	for i := range s.nodes {
		x := s.rng.Float64() * float64(width)
		y := s.rng.Float64() * float64(height)
		s.nodes[i] = NewNode(x, y, s.rng)
	}

	log.Printf("Simulation initialized: %d nodes on %dx%d surface", len(s.nodes), width, height)
	return s, nil
}

// Pointer returns the pointer cell for hosts that deliver input from another goroutine
func (s *Simulation) Pointer() *Pointer {
	return &s.pointer
}

// PointerMoved stores a surface-local pointer position
// Reports whether the pointer was absent before
func (s *Simulation) PointerMoved(x, y float64) bool {
	return s.pointer.Move(x, y)
}

// PointerLeft marks the pointer absent, reporting whether it was present
func (s *Simulation) PointerLeft() bool {
	return s.pointer.Leave()
}

// Nodes returns a copy of the current node state
func (s *Simulation) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Frames returns the number of completed steps
func (s *Simulation) Frames() int64 {
	return s.frames
}

// Connections returns the number of lines drawn by the last DrawConnections
func (s *Simulation) Connections() int {
	return s.connections
}

// Tick runs one full frame: clear, forces and motion, connections, nodes
func (s *Simulation) Tick() {
	s.surface.Clear()
	s.Step()
	s.Render()
}

// Step applies pointer forces and advances every node
func (s *Simulation) Step() {
	s.ApplyPointerForces()
	s.frames++
	if s.metrics != nil {
		s.metrics.frames.Store(s.frames)
	}
}

// Render draws connections and nodes on top of whatever the surface holds
func (s *Simulation) Render() {
	n := s.DrawConnections()
	s.DrawNodes()
	if s.metrics != nil {
		s.metrics.connections.Store(int64(n))
		s.metrics.pointer.Store(s.seenPresent)
	}
}

// ApplyPointerForces pushes nodes inside the pointer radius outward and lets the rest drift,
// then advances every node within the current surface bounds
// With the pointer absent velocities are left untouched
func (s *Simulation) ApplyPointerForces() {
	width, height := s.surface.Size()
	p, present := s.pointer.Load()
	s.seen, s.seenPresent = p, present

	for i := range s.nodes {
		n := &s.nodes[i]
		if present {
			if push, ok := physics.RadialPush(n.Pos, p, parameter.PushRadius, parameter.PushStrength); ok {
				n.Vel = r2.Add(n.Vel, push)
			} else {
				n.drift(s.rng)
			}
		}
		n.Advance(width, height)
	}
}

// DrawConnections strokes a line for every pair closer than ConnectionDistance
// Returns the number of lines drawn
func (s *Simulation) DrawConnections() int {
	width, height := s.surface.Size()
	count := 0
	s.grid.scan(s.nodes, width, height, parameter.ConnectionDistance, func(i, j int, d float64) {
		a, b := s.nodes[i].Pos, s.nodes[j].Pos
		s.surface.StrokeLine(a.X, a.Y, b.X, b.Y, render.RGBWhite, ConnectionAlpha(d))
		count++
	})
	s.connections = count
	return count
}

// DrawNodes draws the pointer ring at the pointer seen by the last step, then every node
func (s *Simulation) DrawNodes() {
	if s.seenPresent {
		s.surface.StrokeCircle(s.seen.X, s.seen.Y, parameter.PushRadius, render.RGBWhite, parameter.PushRingAlpha)
	}
	for i := range s.nodes {
		n := &s.nodes[i]
		s.surface.FillCircle(n.Pos.X, n.Pos.Y, n.Radius, render.RGBWhite, parameter.NodeAlpha)
	}
}
