package tumbler

import (
	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/session"
)

// Version is the release version reported by the CLI.
const Version = "0.2.0"

// Session is the dice-roll session aggregate. See package session.
type Session = session.Session

// Option configures a Session.
type Option = session.Option

// New creates a session backed by the OS CSPRNG.
var New = session.New

// Re-exported session options.
var (
	WithSource        = session.WithSource
	WithRenderer      = session.WithRenderer
	WithNotifier      = session.WithNotifier
	WithLogger        = session.WithLogger
	WithDiceCount     = session.WithDiceCount
	WithFrameInterval = session.WithFrameInterval
)

// Direction aliases for host applications driving navigation.
const (
	DirUp    = domain.DirUp
	DirDown  = domain.DirDown
	DirLeft  = domain.DirLeft
	DirRight = domain.DirRight
)
