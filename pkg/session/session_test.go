package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/ports"
	"github.com/castdice/tumbler/pkg/rng"
	"github.com/castdice/tumbler/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notices for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (n *recordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *recordingNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warns = append(n.warns, msg)
}

func (n *recordingNotifier) lastWarn() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.warns) == 0 {
		return ""
	}
	return n.warns[len(n.warns)-1]
}

func newTestSession(t *testing.T, opts ...session.Option) (*session.Session, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	base := []session.Option{
		session.WithSource(rng.NewSeededSource(99)),
		session.WithNotifier(notifier),
		session.WithFrameInterval(0),
	}
	s, err := session.New(append(base, opts...)...)
	require.NoError(t, err)
	return s, notifier
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestSession(t)
	snap := s.Snapshot()

	assert.Equal(t, 1, snap.DiceCount)
	assert.Equal(t, 0, snap.FocusedIndex)
	assert.Equal(t, 1, snap.Sum)
	assert.Equal(t, 0, snap.RollCount)
	assert.False(t, snap.Rolling)
	assert.Empty(t, snap.LockedIndices)
}

func TestRoll_UnlockedDice(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(4))

	require.NoError(t, s.Roll(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.RollCount)
	for i, slot := range snap.Slots {
		assert.GreaterOrEqual(t, slot.Face, 1, "die %d", i)
		assert.LessOrEqual(t, slot.Face, 6, "die %d", i)
		assert.False(t, slot.Animating, "die %d", i)
	}
	assert.Equal(t, domain.Sum(snap.Faces()), snap.Sum)
}

func TestRoll_AllLocked(t *testing.T) {
	s, notifier := newTestSession(t, session.WithDiceCount(3))
	require.NoError(t, s.LockAll())
	before := s.Snapshot()

	err := s.Roll(context.Background())
	assert.ErrorIs(t, err, domain.ErrAllLocked)
	assert.Equal(t, "all dice are locked", notifier.lastWarn())

	after := s.Snapshot()
	assert.Equal(t, before.RollCount, after.RollCount)
	assert.Equal(t, before.Faces(), after.Faces())
}

func TestRoll_LockedDiceKeepFaces(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(4))

	// Establish non-default faces first.
	require.NoError(t, s.Roll(context.Background()))

	// Lock indices 1 and 3.
	s.Navigate(domain.DirRight)
	require.NoError(t, s.ToggleLock())
	s.Navigate(domain.DirRight)
	s.Navigate(domain.DirRight)
	require.NoError(t, s.ToggleLock())

	before := s.Snapshot()
	require.Equal(t, []int{1, 3}, before.LockedIndices)

	require.NoError(t, s.Roll(context.Background()))

	after := s.Snapshot()
	assert.Equal(t, before.Slots[1].Face, after.Slots[1].Face, "locked die 1 must keep its face")
	assert.Equal(t, before.Slots[3].Face, after.Slots[3].Face, "locked die 3 must keep its face")
	assert.Equal(t, before.RollCount+1, after.RollCount)
}

func TestRoll_RejectedWhileRolling(t *testing.T) {
	s, notifier := newTestSession(t,
		session.WithDiceCount(2),
		session.WithFrameInterval(10*time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- s.Roll(context.Background()) }()

	// Wait for the batch to start, then hit the advisory lock.
	require.Eventually(t, s.IsRolling, time.Second, time.Millisecond)
	assert.ErrorIs(t, s.Roll(context.Background()), domain.ErrRolling)
	assert.ErrorIs(t, s.AddDie(), domain.ErrRolling)
	assert.ErrorIs(t, s.RemoveDie(), domain.ErrRolling)
	assert.ErrorIs(t, s.Reset(), domain.ErrRolling)
	assert.ErrorIs(t, s.ToggleLock(), domain.ErrRolling)
	assert.Equal(t, "already rolling", notifier.lastWarn())

	require.NoError(t, <-done)
	assert.False(t, s.IsRolling())
	assert.Equal(t, 1, s.Snapshot().RollCount)
}

func TestAddRemoveDie(t *testing.T) {
	s, notifier := newTestSession(t, session.WithDiceCount(3))
	require.NoError(t, s.Roll(context.Background()))
	before := s.Snapshot()

	require.NoError(t, s.AddDie())
	assert.Equal(t, 4, s.Snapshot().DiceCount)

	require.NoError(t, s.RemoveDie())
	after := s.Snapshot()
	assert.Equal(t, before.DiceCount, after.DiceCount)
	assert.Equal(t, before.Faces(), after.Faces(), "surviving slots keep their faces")

	// Bounds produce notices, not state changes.
	require.NoError(t, s.SetDiceCount(8))
	assert.ErrorIs(t, s.AddDie(), domain.ErrMaxDice)
	assert.Contains(t, notifier.lastWarn(), "maximum")

	require.NoError(t, s.SetDiceCount(1))
	assert.ErrorIs(t, s.RemoveDie(), domain.ErrMinDice)
	assert.Contains(t, notifier.lastWarn(), "minimum")
}

func TestSetDiceCount(t *testing.T) {
	s, notifier := newTestSession(t, session.WithDiceCount(5))
	require.NoError(t, s.Roll(context.Background()))
	faces := s.Snapshot().Faces()

	// Shrink preserves the low indices and clamps focus.
	for i := 0; i < 4; i++ {
		s.Navigate(domain.DirRight)
	}
	require.Equal(t, 4, s.Snapshot().FocusedIndex)
	require.NoError(t, s.SetDiceCount(2))
	snap := s.Snapshot()
	assert.Equal(t, 2, snap.DiceCount)
	assert.Equal(t, faces[:2], snap.Faces())
	assert.Equal(t, 1, snap.FocusedIndex)

	// Grow appends fresh slots at face 1.
	require.NoError(t, s.SetDiceCount(4))
	snap = s.Snapshot()
	assert.Equal(t, []int{faces[0], faces[1], 1, 1}, snap.Faces())

	// Out of range is rejected with a notice and no state change.
	assert.ErrorIs(t, s.SetDiceCount(0), domain.ErrCountOutOfRange)
	assert.ErrorIs(t, s.SetDiceCount(9), domain.ErrCountOutOfRange)
	assert.Contains(t, notifier.lastWarn(), "between")
	assert.Equal(t, 4, s.Snapshot().DiceCount)
}

func TestSetDiceCount_PrunesLocks(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(4))
	require.NoError(t, s.LockAll())

	require.NoError(t, s.SetDiceCount(2))
	assert.Equal(t, []int{0, 1}, s.Snapshot().LockedIndices)

	// Growing back does not resurrect dropped locks.
	require.NoError(t, s.SetDiceCount(4))
	assert.Equal(t, []int{0, 1}, s.Snapshot().LockedIndices)
}

func TestReset(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(5))
	require.NoError(t, s.Roll(context.Background()))
	require.NoError(t, s.LockAll())

	require.NoError(t, s.Reset())

	snap := s.Snapshot()
	assert.Equal(t, snap.DiceCount, snap.Sum, "every face back to 1")
	assert.Empty(t, snap.LockedIndices)
	assert.Equal(t, 0, snap.RollCount)
	assert.Empty(t, s.History())
}

func TestNavigate_NeverOutOfBounds(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(3))

	s.Navigate(domain.DirRight)
	s.Navigate(domain.DirRight)
	assert.Equal(t, 2, s.Snapshot().FocusedIndex)

	// Edge clamp: right from the last column is a no-op.
	s.Navigate(domain.DirRight)
	assert.Equal(t, 2, s.Snapshot().FocusedIndex)

	s.Navigate(domain.DirUp)
	assert.Equal(t, 2, s.Snapshot().FocusedIndex)
}

func TestLockCommands(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(2))

	require.NoError(t, s.ToggleLock())
	assert.Equal(t, []int{0}, s.Snapshot().LockedIndices)

	require.NoError(t, s.ToggleLock())
	assert.Empty(t, s.Snapshot().LockedIndices)

	require.NoError(t, s.LockAll())
	assert.Equal(t, []int{0, 1}, s.Snapshot().LockedIndices)

	require.NoError(t, s.UnlockAll())
	assert.Empty(t, s.Snapshot().LockedIndices)
}

func TestHistory_RecordsCompletedRolls(t *testing.T) {
	s, _ := newTestSession(t, session.WithDiceCount(3))

	require.NoError(t, s.Roll(context.Background()))
	require.NoError(t, s.Roll(context.Background()))

	history := s.History()
	require.Len(t, history, 2)
	res := domain.ValidateHistory(history)
	assert.True(t, res.Valid)
	assert.Equal(t, s.Snapshot().Faces(), history[1])
}

func TestRoll_FailedDieKeepsPreRollFace(t *testing.T) {
	// One die's redraws always fail, so its spin never delivers an outcome.
	failing := ports.RenderFunc(func(f ports.Frame) error {
		if f.Index == 2 {
			return errors.New("redraw failed")
		}
		return nil
	})
	s, _ := newTestSession(t,
		session.WithDiceCount(4),
		session.WithRenderer(failing),
		session.WithFrameInterval(time.Millisecond))

	before := s.Snapshot().Faces()
	require.NoError(t, s.Roll(context.Background()))

	after := s.Snapshot()
	assert.Equal(t, before[2], after.Slots[2].Face, "failed die must keep its pre-roll face")
	assert.False(t, after.Slots[2].Animating)
	for i, slot := range after.Slots {
		assert.GreaterOrEqual(t, slot.Face, 1, "die %d", i)
		assert.LessOrEqual(t, slot.Face, 6, "die %d", i)
	}
	// The surviving dice still settled, so the roll counts.
	assert.Equal(t, 1, after.RollCount)
}

func TestRoll_AllRedrawsFailLeavesFacesUntouched(t *testing.T) {
	failing := ports.RenderFunc(func(ports.Frame) error {
		return errors.New("redraw failed")
	})
	s, _ := newTestSession(t,
		session.WithDiceCount(4),
		session.WithRenderer(failing),
		session.WithFrameInterval(time.Millisecond))

	before := s.Snapshot().Faces()
	require.NoError(t, s.Roll(context.Background()))

	after := s.Snapshot()
	assert.Equal(t, before, after.Faces())
	assert.Equal(t, 0, after.RollCount)
}

func TestClose_AbortsInFlightRoll(t *testing.T) {
	s, _ := newTestSession(t,
		session.WithDiceCount(4),
		session.WithFrameInterval(20*time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- s.Roll(context.Background()) }()
	require.Eventually(t, s.IsRolling, time.Second, time.Millisecond)

	s.Close()

	require.NoError(t, <-done)
	assert.False(t, s.IsRolling())
	// The aborted batch does not count as a completed roll, and no die is
	// left showing a cosmetic transient face.
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.RollCount)
	assert.Equal(t, []int{1, 1, 1, 1}, snap.Faces())
}
