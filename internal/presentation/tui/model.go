// Package tui is the Bubble Tea front end: it maps key presses onto session
// commands and repaints the dice grid from session snapshots as frame
// events arrive.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/session"
)

type rollDoneMsg struct{}

// Model is the Bubble Tea model wrapping a dice session.
type Model struct {
	sess   *session.Session
	ctx    context.Context
	cancel context.CancelFunc
	events chan tea.Msg
	styles Styles

	width   int
	height  int
	notice  string
	warning bool
}

// NewModel builds the model around an existing session. The events channel
// must be the one wired into the session via NewEventBridge.
func NewModel(sess *session.Session, events chan tea.Msg, noColor bool) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		sess:   sess,
		ctx:    ctx,
		cancel: cancel,
		events: events,
		styles: DefaultStyles(noColor),
	}
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// listen waits for the next frame or notice from the session.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// roll runs the blocking roll command off the UI goroutine. Rejections
// surface through the notifier, so the result needs no inspection here.
func (m Model) roll() tea.Cmd {
	return func() tea.Msg {
		_ = m.sess.Roll(m.ctx)
		return rollDoneMsg{}
	}
}

// Update handles input and session events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		return m, m.listen()

	case NoticeMsg:
		m.notice = msg.Text
		m.warning = msg.Warning
		return m, m.listen()

	case rollDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		m.cancel()
		m.sess.Close()
		return m, tea.Quit

	case "r", " ", "enter":
		if m.sess.IsRolling() {
			return m, nil
		}
		return m, m.roll()

	case "up":
		m.sess.Navigate(domain.DirUp)
	case "down":
		m.sess.Navigate(domain.DirDown)
	case "left":
		m.sess.Navigate(domain.DirLeft)
	case "right":
		m.sess.Navigate(domain.DirRight)

	case "l":
		_ = m.sess.ToggleLock()
	case "L":
		_ = m.sess.LockAll()
	case "u":
		_ = m.sess.UnlockAll()

	case "+", "=":
		_ = m.sess.AddDie()
	case "-":
		_ = m.sess.RemoveDie()
	case "x":
		_ = m.sess.Reset()

	case "1", "2", "3", "4", "5", "6", "7", "8":
		_ = m.sess.SetDiceCount(int(key[0] - '0'))
	}
	return m, nil
}
