package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/meshdrift/mesh"
	"github.com/lixenwraith/meshdrift/parameter"
)

// Service manages the tcell screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a new terminal service
func NewService() *Service {
	return &Service{
		eventCh: make(chan tcell.Event, parameter.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init prepares screen for drawing; a nil screen opens the controlling terminal
// Fails with mesh.ErrSurfaceUnavailable when stdout is not a terminal and
// mesh.ErrContextUnavailable when the screen cannot be initialized
func (s *Service) Init(screen tcell.Screen) error {
	if screen == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("terminal init: stdout is not a terminal: %w", mesh.ErrSurfaceUnavailable)
		}
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal init: %w: %w", mesh.ErrContextUnavailable, err)
		}
		screen = scr
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w: %w", mesh.ErrContextUnavailable, err)
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	s.screen = screen
	return nil
}

// Start launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen == nil {
		return fmt.Errorf("terminal start: %w", mesh.ErrSurfaceUnavailable)
	}
	if s.running {
		return nil
	}
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop forwards screen events until the screen is finalized or stop is signaled
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.screen.Fini()
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Stderr.Sync()
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			select {
			case <-s.stopCh:
				return
			default:
			}
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal; safe to call more than once
func (s *Service) Stop() {
	s.mu.Lock()
	running := s.running
	s.running = false
	s.mu.Unlock()

	if running {
		close(s.stopCh)
		// Interrupt unblocks a PollEvent waiting for input
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}

	if s.screen != nil {
		s.screen.Fini()
		s.screen = nil
	}
}

// Screen returns the underlying tcell screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
