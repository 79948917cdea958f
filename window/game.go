// Package window hosts the mesh in a desktop window using ebiten.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/meshdrift/mesh"
	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/status"
)

// Options configures the window host
type Options struct {
	Width, Height int
	Title         string
	Stats         bool

	// OnPointerEnter runs on the update goroutine when the cursor enters the window
	OnPointerEnter func()

	Simulation []mesh.Option
}

// Game implements ebiten.Game: Update steps the simulation, Draw renders it
type Game struct {
	canvas  *Canvas
	sim     *mesh.Simulation
	reg     *status.Registry
	stats   bool
	onEnter func()
}

// NewGame builds the simulation on a canvas of the initial window size
func NewGame(opts Options) (*Game, error) {
	canvas := NewCanvas(opts.Width, opts.Height)
	reg := status.NewRegistry()

	simOpts := append([]mesh.Option{}, opts.Simulation...)
	sim, err := mesh.New(canvas, append(simOpts, mesh.WithMetrics(reg))...)
	if err != nil {
		return nil, err
	}

	return &Game{
		canvas:  canvas,
		sim:     sim,
		reg:     reg,
		stats:   opts.Stats,
		onEnter: opts.OnPointerEnter,
	}, nil
}

// Simulation returns the hosted simulation
func (g *Game) Simulation() *mesh.Simulation {
	return g.sim
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.stats = !g.stats
	}

	x, y := ebiten.CursorPosition()
	g.trackPointer(x, y, ebiten.IsFocused())

	g.sim.Step()
	return nil
}

// trackPointer writes the cursor into the pointer cell
// An unfocused window or a cursor outside the canvas leaves the pointer absent
func (g *Game) trackPointer(x, y int, focused bool) {
	w, h := g.canvas.Size()
	if !focused || x < 0 || y < 0 || x >= w || y >= h {
		g.sim.PointerLeft()
		return
	}
	if g.sim.PointerMoved(float64(x), float64(y)) && g.onEnter != nil {
		g.onEnter()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Bind(screen)
	g.canvas.Clear()
	g.sim.Render()
	if g.stats {
		ebitenutil.DebugPrint(screen, g.reg.Line())
	}
}

// Layout keeps one surface unit per device-independent pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.SetSize(outsideWidth, outsideHeight)
	return g.canvas.Size()
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.WindowTPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w: %w", mesh.ErrContextUnavailable, err)
	}
	return nil
}
