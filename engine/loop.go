package engine

import (
	"context"
	"time"
)

// Loop drives a frame callback on a fixed ticker and applies host events between frames
// Event handling and frames run on the calling goroutine, so a frame never observes
// an event half-applied and no two frames overlap
type Loop[E any] struct {
	interval time.Duration
	events   <-chan E
	handle   func(E) bool
	frame    func(dt time.Duration)
}

// NewLoop creates a loop; handle returning false stops the loop
// A nil events channel runs frames only
func NewLoop[E any](interval time.Duration, events <-chan E, handle func(E) bool, frame func(dt time.Duration)) *Loop[E] {
	return &Loop[E]{
		interval: interval,
		events:   events,
		handle:   handle,
		frame:    frame,
	}
}

// Run blocks until the handler stops the loop, the event channel closes, or ctx is done
// Returns ctx.Err() on cancellation, nil otherwise
func (l *Loop[E]) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			if l.handle != nil && !l.handle(ev) {
				return nil
			}

		case now := <-ticker.C:
			// Cancellation wins over a tick that became ready at the same time
			if err := ctx.Err(); err != nil {
				return err
			}
			dt := now.Sub(last)
			last = now
			l.frame(dt)
		}
	}
}
