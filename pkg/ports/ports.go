package ports

import "time"

// FaceSource produces die outcomes and spin durations.
type FaceSource interface {
	// Face returns a uniform value in [1,6].
	Face() int

	// Duration returns a uniform spin duration in [300ms, 600ms).
	Duration() time.Duration
}

// Frame describes one visual update for a single die.
type Frame struct {
	Index   int
	Face    int
	Settled bool
	Focused bool
	Locked  bool
}

// Renderer receives visual updates from the session. Redraw may be called
// from multiple spin goroutines concurrently; implementations must be safe
// for that, and should be fast (the TUI adapter just posts a message).
type Renderer interface {
	Redraw(Frame) error
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(Frame) error

func (f RenderFunc) Redraw(fr Frame) error { return f(fr) }

// NopRenderer discards all frames. Useful headless and in tests.
type NopRenderer struct{}

func (NopRenderer) Redraw(Frame) error { return nil }

// FrameSink receives face updates from an in-flight spin. The session
// implements it, so it can fold focus and lock flags into the Frame it
// forwards to the Renderer.
type FrameSink interface {
	PutFrame(index, face int, settled bool) error
}

// Notifier delivers transient user-facing messages (toasts).
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Info(string) {}
func (NopNotifier) Warn(string) {}
