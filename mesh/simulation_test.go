package mesh

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/status"
)

func newTestSimulation(t *testing.T, width, height int) (*Simulation, *recordingSurface) {
	t.Helper()
	surface := newRecordingSurface(width, height)
	sim, err := New(surface, WithRand(testRand(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return sim, surface
}

// placeNodes replaces the simulation's nodes with stationary nodes at the given positions
func placeNodes(sim *Simulation, positions ...r2.Vec) {
	sim.nodes = sim.nodes[:0]
	for _, p := range positions {
		sim.nodes = append(sim.nodes, Node{Pos: p, Speed: parameter.NodeSpeed, Radius: parameter.NodeRadius})
	}
}

func TestNewRequiresSurface(t *testing.T) {
	sim, err := New(nil)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Fatalf("Expected ErrSurfaceUnavailable, got %v", err)
	}
	if sim != nil {
		t.Error("Expected no simulation on failure")
	}
}

func TestNewScattersNodes(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	nodes := sim.Nodes()
	if len(nodes) != parameter.NodeCount {
		t.Fatalf("Expected %d nodes, got %d", parameter.NodeCount, len(nodes))
	}
	for i, n := range nodes {
		if n.Pos.X < 0 || n.Pos.X >= 800 || n.Pos.Y < 0 || n.Pos.Y >= 600 {
			t.Errorf("node %d: initial position %v outside surface", i, n.Pos)
		}
		if math.Abs(r2.Norm(n.Vel)-0.3) > epsilon {
			t.Errorf("node %d: initial speed %f, want 0.3", i, r2.Norm(n.Vel))
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, _ := New(newRecordingSurface(800, 600), WithSeed(99))
	b, _ := New(newRecordingSurface(800, 600), WithSeed(99))
	for i := 0; i < 20; i++ {
		a.PointerMoved(400, 300)
		b.PointerMoved(400, 300)
		a.Tick()
		b.Tick()
	}
	na, nb := a.Nodes(), b.Nodes()
	for i := range na {
		if na[i] != nb[i] {
			t.Fatalf("node %d diverged: %v vs %v", i, na[i], nb[i])
		}
	}
}

func TestConnectionOpacityLaw(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		wantLine  bool
		wantAlpha float64
	}{
		{"touching", 0, true, 0.2},
		{"half", 75, true, 0.1},
		{"just inside", 149.999, true, (1 - 149.999/150) * 0.2},
		{"threshold", 150, false, 0},
		{"beyond", 200, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, surface := newTestSimulation(t, 800, 600)
			placeNodes(sim, r2.Vec{X: 100, Y: 300}, r2.Vec{X: 100 + tt.distance, Y: 300})

			n := sim.DrawConnections()
			if !tt.wantLine {
				if n != 0 || len(surface.lines) != 0 {
					t.Fatalf("Expected no line at distance %f, got %d", tt.distance, len(surface.lines))
				}
				return
			}
			if n != 1 || len(surface.lines) != 1 {
				t.Fatalf("Expected one line at distance %f, got %d", tt.distance, len(surface.lines))
			}
			if got := surface.lines[0].alpha; math.Abs(got-tt.wantAlpha) > epsilon {
				t.Errorf("alpha %f, want %f", got, tt.wantAlpha)
			}
		})
	}
}

func TestConnectionsNoSelfOrDuplicatePairs(t *testing.T) {
	sim, surface := newTestSimulation(t, 800, 600)
	// Three mutually close nodes: exactly 3 unordered pairs
	placeNodes(sim, r2.Vec{X: 10, Y: 10}, r2.Vec{X: 20, Y: 10}, r2.Vec{X: 15, Y: 20})

	if n := sim.DrawConnections(); n != 3 {
		t.Fatalf("Expected 3 connections, got %d", n)
	}
	for _, l := range surface.lines {
		if l.x0 == l.x1 && l.y0 == l.y1 {
			t.Errorf("Self pair drawn at (%f,%f)", l.x0, l.y0)
		}
	}
	if sim.Connections() != 3 {
		t.Errorf("Expected Connections() 3, got %d", sim.Connections())
	}
}

func TestPointerZeroDistanceGuard(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	placeNodes(sim, r2.Vec{X: 400, Y: 300})
	sim.nodes[0].Vel = r2.Vec{X: 1, Y: 0}
	sim.PointerMoved(400, 300)

	sim.ApplyPointerForces()

	v := sim.nodes[0].Vel
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		t.Fatalf("Expected finite velocity, got %v", v)
	}
	// Coincident node takes the decay branch: fast x axis decays without push
	if v.X != parameter.VelocityDecay {
		t.Errorf("Expected decayed vx %f, got %f", parameter.VelocityDecay, v.X)
	}
}

func TestPointerForceAccumulates(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	placeNodes(sim, r2.Vec{X: 350, Y: 300})
	sim.PointerMoved(400, 300)

	sim.ApplyPointerForces()
	// 50 units away: (100-50)/100*5 = 2.5 outward (negative x)
	if got := sim.nodes[0].Vel.X; math.Abs(got-(-2.5)) > epsilon {
		t.Fatalf("Expected vx -2.5 after one push, got %f", got)
	}

	before := sim.nodes[0].Vel.X
	sim.ApplyPointerForces()
	if sim.nodes[0].Vel.X >= before {
		t.Errorf("Expected velocity to compound while pointer stays close: %f -> %f", before, sim.nodes[0].Vel.X)
	}
}

func TestPointerAbsentLeavesVelocity(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	placeNodes(sim, r2.Vec{X: 400, Y: 300})
	sim.nodes[0].Vel = r2.Vec{X: 3, Y: -2}

	sim.PointerMoved(400, 310)
	sim.PointerLeft()
	sim.ApplyPointerForces()

	if v := sim.nodes[0].Vel; v != (r2.Vec{X: 3, Y: -2}) {
		t.Errorf("Expected velocity untouched without pointer, got %v", v)
	}
	if p := sim.nodes[0].Pos; p != (r2.Vec{X: 403, Y: 298}) {
		t.Errorf("Expected node to coast to (403, 298), got %v", p)
	}
}

func TestDecayAndDriftStayBounded(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	for i := range sim.nodes {
		sim.nodes[i].Vel = r2.Vec{X: 6, Y: -6}
	}
	// Present but far outside the push radius of every node
	sim.PointerMoved(-10000, -10000)

	for tick := 0; tick < 1000; tick++ {
		sim.ApplyPointerForces()
		if tick < 200 {
			continue
		}
		for i, n := range sim.nodes {
			if math.Abs(n.Vel.X) > 0.36 || math.Abs(n.Vel.Y) > 0.36 {
				t.Fatalf("tick %d node %d: velocity %v diverged from nominal speed", tick, i, n.Vel)
			}
		}
	}
}

func TestEndToEndPointerAbsentStaysInBounds(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	for i := 0; i < 100; i++ {
		sim.Tick()
	}
	for i, n := range sim.Nodes() {
		vx, vy := math.Abs(n.Vel.X), math.Abs(n.Vel.Y)
		if n.Pos.X < -vx-epsilon || n.Pos.X > 800+vx+epsilon || n.Pos.Y < -vy-epsilon || n.Pos.Y > 600+vy+epsilon {
			t.Errorf("node %d: position %v outside [0,800]x[0,600] plus overshoot", i, n.Pos)
		}
	}
	if sim.Frames() != 100 {
		t.Errorf("Expected 100 frames, got %d", sim.Frames())
	}
}

func TestEndToEndPointerPushesOutward(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)
	center := r2.Vec{X: 400, Y: 300}

	// Guarantee coverage inside the radius regardless of the seed
	sim.nodes[0].Pos = r2.Vec{X: 430, Y: 300}
	sim.nodes[1].Pos = r2.Vec{X: 400, Y: 220}
	sim.nodes[2].Pos = r2.Vec{X: 340, Y: 350}

	before := sim.Nodes()
	sim.PointerMoved(center.X, center.Y)
	sim.Tick()
	after := sim.Nodes()

	checked := 0
	for i := range before {
		away := r2.Sub(before[i].Pos, center)
		dist := r2.Norm(away)
		if dist == 0 || dist >= parameter.PushRadius {
			continue
		}
		u := r2.Scale(1/dist, away)
		pre := r2.Dot(before[i].Vel, u)
		post := r2.Dot(after[i].Vel, u)
		if post <= pre {
			t.Errorf("node %d at distance %f: outward velocity %f -> %f did not increase", i, dist, pre, post)
		}
		checked++
	}
	if checked < 3 {
		t.Fatalf("Expected at least 3 nodes inside the radius, got %d", checked)
	}
}

func TestTickDrawOrder(t *testing.T) {
	sim, surface := newTestSimulation(t, 800, 600)
	sim.PointerMoved(100, 100)
	sim.Tick()

	if surface.clears != 1 {
		t.Errorf("Expected one clear per tick, got %d", surface.clears)
	}
	rings := surface.rings()
	if len(rings) != 1 {
		t.Fatalf("Expected one pointer ring, got %d", len(rings))
	}
	if rings[0].cx != 100 || rings[0].cy != 100 || rings[0].r != parameter.PushRadius || rings[0].alpha != parameter.PushRingAlpha {
		t.Errorf("Unexpected ring %+v", rings[0])
	}
	if got := len(surface.circles) - len(rings); got != parameter.NodeCount {
		t.Errorf("Expected %d node discs, got %d", parameter.NodeCount, got)
	}
	for _, c := range surface.circles {
		if c.fill && (c.r != parameter.NodeRadius || c.alpha != parameter.NodeAlpha) {
			t.Fatalf("Unexpected node disc %+v", c)
		}
	}

	sim.PointerLeft()
	sim.Tick()
	if len(surface.rings()) != 0 {
		t.Error("Expected no ring once the pointer left")
	}
}

func TestSurfaceResizeBetweenFrames(t *testing.T) {
	sim, surface := newTestSimulation(t, 800, 600)
	sim.Tick()
	calls := surface.sizeCalls

	surface.width, surface.height = 0, 0
	sim.Tick()
	surface.width, surface.height = 100, 50
	for i := 0; i < 10; i++ {
		sim.Tick()
	}

	if surface.sizeCalls <= calls+10 {
		t.Errorf("Expected surface size to be read every frame, got %d new reads", surface.sizeCalls-calls)
	}
	for i, n := range sim.Nodes() {
		if math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y) {
			t.Fatalf("node %d: NaN position after resize", i)
		}
	}
}

func TestMetricsPublished(t *testing.T) {
	reg := status.NewRegistry()
	surface := newRecordingSurface(800, 600)
	sim, err := New(surface, WithSeed(5), WithMetrics(reg))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sim.PointerMoved(10, 10)
	sim.Tick()
	sim.Tick()

	if got := reg.Ints.Get(status.KeyFrames).Load(); got != 2 {
		t.Errorf("Expected 2 frames published, got %d", got)
	}
	if got := reg.Ints.Get(status.KeyConnections).Load(); got != int64(len(surface.lines)) {
		t.Errorf("Expected %d connections published, got %d", len(surface.lines), got)
	}
	if !reg.Bools.Get(status.KeyPointer).Load() {
		t.Error("Expected pointer presence published")
	}
}

func TestPointerTransitionsReported(t *testing.T) {
	sim, _ := newTestSimulation(t, 800, 600)

	if !sim.PointerMoved(10, 10) {
		t.Error("first move should report entry")
	}
	if sim.PointerMoved(20, 10) {
		t.Error("second move should not report entry")
	}
	if !sim.PointerLeft() {
		t.Error("leave should report the pointer was present")
	}
	if sim.PointerLeft() {
		t.Error("second leave should report nothing")
	}
}
