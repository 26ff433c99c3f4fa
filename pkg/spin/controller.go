// Package spin runs die animations: a timed sequence of cosmetic transient
// faces ending in a committed final face, one goroutine per die, joined at
// the batch boundary.
package spin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/castdice/tumbler/internal/logging"
	"github.com/castdice/tumbler/pkg/ports"
)

// DefaultFrameInterval is the wall time between animation frames (20 fps).
const DefaultFrameInterval = 50 * time.Millisecond

// Controller animates spins against a FrameSink.
type Controller struct {
	source   ports.FaceSource
	sink     ports.FrameSink
	logger   *slog.Logger
	interval time.Duration
}

// Option configures the Controller.
type Option func(*Controller)

// WithLogger configures a logger for per-die failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithFrameInterval overrides the frame interval. A non-positive interval
// disables the cosmetic frame loop entirely; spins settle immediately on
// their final face. Used by tests and the headless CLI.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.interval = d
	}
}

// NewController creates a Controller drawing from source and emitting to sink.
func NewController(source ports.FaceSource, sink ports.FrameSink, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		sink:     sink,
		logger:   logging.NewNop(),
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SpinOne runs a single die's animation to completion and returns its final
// face. Transient frames are purely cosmetic; only the last draw is the
// authoritative outcome.
func (c *Controller) SpinOne(ctx context.Context, index int) (int, error) {
	if c.interval > 0 {
		duration := c.source.Duration()
		frames := int(duration / c.interval)
		if frames < 1 {
			frames = 1
		}

		for i := 0; i < frames; i++ {
			if err := c.sink.PutFrame(index, c.source.Face(), false); err != nil {
				return 0, fmt.Errorf("frame %d: %w", i, err)
			}
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(c.interval):
			}
		}
	}

	final := c.source.Face()
	if err := c.sink.PutFrame(index, final, true); err != nil {
		return 0, fmt.Errorf("settle frame: %w", err)
	}
	return final, nil
}

type spinResult struct {
	index int
	face  int
	err   error
}

// SpinBatch spins every index concurrently, each with its own independently
// drawn duration, and blocks until all have finished. It returns the final
// face per index for every spin that succeeded. A failing spin is logged and
// skipped; it never blocks or aborts its siblings. An empty index set
// returns immediately.
func (c *Controller) SpinBatch(ctx context.Context, indices []int) map[int]int {
	results := make(map[int]int, len(indices))
	if len(indices) == 0 {
		return results
	}

	ch := make(chan spinResult, len(indices))
	for _, index := range indices {
		go func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ch <- spinResult{index: i, err: fmt.Errorf("spin panic: %v", r)}
				}
			}()
			face, err := c.SpinOne(ctx, i)
			ch <- spinResult{index: i, face: face, err: err}
		}(index)
	}

	for range indices {
		res := <-ch
		if res.err != nil {
			c.logger.Warn("spin failed", "die", res.index, "err", res.err)
			continue
		}
		results[res.index] = res.face
	}
	return results
}
