package session

import (
	"log/slog"
	"time"

	"github.com/castdice/tumbler/pkg/ports"
)

// Option configures a Session.
type Option func(*Session)

// WithSource injects a randomness source, bypassing the default CSPRNG.
func WithSource(source ports.FaceSource) Option {
	return func(s *Session) {
		s.source = source
	}
}

// WithRenderer sets the redraw sink for visual updates.
func WithRenderer(r ports.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithNotifier sets the channel for transient user-facing messages.
func WithNotifier(n ports.Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

// WithLogger configures a logger for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithDiceCount sets the initial dice count. Out-of-range values are
// clamped into [MinDice, MaxDice].
func WithDiceCount(n int) Option {
	return func(s *Session) {
		s.initialCount = n
	}
}

// WithFrameInterval overrides the animation frame interval. Non-positive
// disables animation frames; rolls settle immediately.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Session) {
		s.frameInterval = d
		s.frameSet = true
	}
}
