package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdice/tumbler/pkg/ports"
)

// FrameMsg is a visual update from a spin, delivered as a Bubble Tea
// message. The view repaints from the session snapshot, so a dropped frame
// only skips a repaint, never loses state.
type FrameMsg ports.Frame

// NoticeMsg is a transient user-facing message.
type NoticeMsg struct {
	Text    string
	Warning bool
}

// eventBridge adapts the session's renderer and notifier ports onto the
// model's event channel. Sends never block: spin goroutines must not stall
// behind a slow terminal.
type eventBridge struct {
	events chan<- tea.Msg
}

// NewEventBridge returns a renderer and notifier that feed the given
// channel. Create the channel, build the session with these, then hand the
// same channel to NewModel.
func NewEventBridge(events chan<- tea.Msg) (ports.Renderer, ports.Notifier) {
	b := eventBridge{events: events}
	return b, b
}

func (b eventBridge) Redraw(f ports.Frame) error {
	b.post(FrameMsg(f))
	return nil
}

func (b eventBridge) Info(msg string) { b.post(NoticeMsg{Text: msg}) }
func (b eventBridge) Warn(msg string) { b.post(NoticeMsg{Text: msg, Warning: true}) }

func (b eventBridge) post(msg tea.Msg) {
	select {
	case b.events <- msg:
	default:
	}
}
