package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/rng"
	"github.com/castdice/tumbler/pkg/session"
)

func newTestModel(t *testing.T, dice int) Model {
	t.Helper()
	events := make(chan tea.Msg, 64)
	renderer, notifier := NewEventBridge(events)
	sess, err := session.New(
		session.WithSource(rng.NewSeededSource(5)),
		session.WithRenderer(renderer),
		session.WithNotifier(notifier),
		session.WithDiceCount(dice),
		session.WithFrameInterval(0),
	)
	require.NoError(t, err)
	return NewModel(sess, events, true)
}

func TestStatusLine(t *testing.T) {
	snap := domain.Snapshot{DiceCount: 1, Sum: 1}
	assert.Equal(t, "1 die | Sum: 1 | Roll #0", statusLine(snap))

	snap = domain.Snapshot{DiceCount: 3, Sum: 7, RollCount: 2}
	assert.Equal(t, "3 dice | Sum: 7 | Roll #2", statusLine(snap))

	snap.Rolling = true
	assert.Contains(t, statusLine(snap), "rolling...")
}

func TestView_ShowsAllDice(t *testing.T) {
	m := newTestModel(t, 5)
	out := m.View()

	// Five die cells plus one glyph in the frequency line.
	assert.Equal(t, 6, strings.Count(out, domain.FaceGlyph(1)))
	assert.Contains(t, out, "Sum: 5")
	assert.Contains(t, out, "5x⚀")
}

func TestView_LockMarker(t *testing.T) {
	m := newTestModel(t, 2)
	// The help footer mentions "lock", so compare counts instead of presence.
	before := strings.Count(m.View(), "lock")

	require.NoError(t, m.sess.ToggleLock())

	assert.Equal(t, before+1, strings.Count(m.View(), "lock"))
}

func TestHandleKey_Commands(t *testing.T) {
	m := newTestModel(t, 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Model)
	assert.Equal(t, 3, m.sess.Snapshot().DiceCount)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
	m = next.(Model)
	assert.Equal(t, 7, m.sess.Snapshot().DiceCount)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, 1, m.sess.Snapshot().FocusedIndex)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(Model)
	assert.Equal(t, []int{1}, m.sess.Snapshot().LockedIndices)
}

func TestNoticeMsg_UpdatesToast(t *testing.T) {
	m := newTestModel(t, 1)

	next, _ := m.Update(NoticeMsg{Text: "all dice are locked", Warning: true})
	m = next.(Model)
	assert.Contains(t, m.View(), "all dice are locked")
}
