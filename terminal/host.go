package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/meshdrift/engine"
	"github.com/lixenwraith/meshdrift/mesh"
	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/render"
	"github.com/lixenwraith/meshdrift/status"
)

// Options configures a Host
type Options struct {
	Color ColorMode
	Units float64 // surface units per braille dot
	Stats bool

	// OnPointerEnter runs on the loop goroutine when the pointer becomes present
	OnPointerEnter func()

	Simulation []mesh.Option
}

// Host runs a simulation on a braille raster flushed to a tcell screen
type Host struct {
	screen  tcell.Screen
	raster  *render.Raster
	sim     *mesh.Simulation
	reg     *status.Registry
	meter   *engine.FrameMeter
	colors  render.ColorFunc
	stats   bool
	onEnter func()
}

// NewHost sizes a raster to the screen and builds the simulation on it
func NewHost(screen tcell.Screen, opts Options) (*Host, error) {
	if screen == nil {
		return nil, mesh.ErrSurfaceUnavailable
	}

	units := opts.Units
	if units <= 0 {
		units = parameter.DefaultUnitsPerDot
	}

	cols, rows := screen.Size()
	raster := render.NewBrailleRaster(cols, rows, units)
	reg := status.NewRegistry()

	simOpts := append([]mesh.Option{}, opts.Simulation...)
	sim, err := mesh.New(raster, append(simOpts, mesh.WithMetrics(reg))...)
	if err != nil {
		return nil, err
	}

	return &Host{
		screen:  screen,
		raster:  raster,
		sim:     sim,
		reg:     reg,
		meter:   engine.NewFrameMeter(reg),
		colors:  opts.Color.ColorFunc(),
		stats:   opts.Stats,
		onEnter: opts.OnPointerEnter,
	}, nil
}

// Simulation returns the hosted simulation
func (h *Host) Simulation() *mesh.Simulation {
	return h.sim
}

// Registry returns the metrics shown by the stats line
func (h *Host) Registry() *status.Registry {
	return h.reg
}

// StatsVisible reports whether the stats line is drawn
func (h *Host) StatsVisible() bool {
	return h.stats
}

// Run drives frames at FrameUpdateInterval until quit, channel close or ctx cancellation
func (h *Host) Run(ctx context.Context, events <-chan tcell.Event) error {
	loop := engine.NewLoop(parameter.FrameUpdateInterval, events, h.HandleEvent, h.Frame)
	return loop.Run(ctx)
}

// HandleEvent applies one input event; returns false when the user quits
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 's', 'S':
				h.stats = !h.stats
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.raster.CellCenter(col, row)
		if h.sim.PointerMoved(x, y) && h.onEnter != nil {
			h.onEnter()
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			h.sim.PointerLeft()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.raster.ResizeCells(cols, rows)
		h.screen.Sync()
	}
	return true
}

// Frame runs one simulation tick and presents it
func (h *Host) Frame(dt time.Duration) {
	start := time.Now()

	h.sim.Tick()
	h.raster.FlushBraille(h.screen, h.colors)
	if h.stats {
		h.drawStats()
	}
	h.screen.Show()

	h.meter.Observe(dt, time.Since(start))
}

// drawStats overlays the metrics line on the top row
func (h *Host) drawStats() {
	cols, _ := h.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)

	x := 0
	for _, r := range h.reg.Line() {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, 0, r, nil, style)
		x++
	}
}
