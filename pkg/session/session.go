package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/castdice/tumbler/internal/logging"
	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/ports"
	"github.com/castdice/tumbler/pkg/rng"
	"github.com/castdice/tumbler/pkg/spin"
)

// Session is the top-level aggregate: dice count, slots, focus, locks, and
// the roll counter. It owns its slots exclusively; no other component holds
// a writable reference to slot state.
type Session struct {
	mu      sync.Mutex
	slots   []*domain.Slot
	focused int
	rolls   int
	rolling bool
	history [][]int

	// cancelBatch aborts the in-flight batch, if any. Guarded by mu.
	cancelBatch context.CancelFunc

	source   ports.FaceSource
	renderer ports.Renderer
	notifier ports.Notifier
	logger   *slog.Logger
	spinner  *spin.Controller

	initialCount  int
	frameInterval time.Duration
	frameSet      bool
}

// New creates a session. Without WithSource, the OS CSPRNG is probed; a
// missing entropy source is fatal at startup and surfaces here.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		renderer:     ports.NopRenderer{},
		notifier:     ports.NopNotifier{},
		logger:       logging.NewNop(),
		initialCount: domain.MinDice,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		source, err := rng.NewCryptoSource()
		if err != nil {
			return nil, err
		}
		s.source = source
	}

	count := s.initialCount
	if count < domain.MinDice {
		count = domain.MinDice
	}
	if count > domain.MaxDice {
		count = domain.MaxDice
	}
	s.slots = make([]*domain.Slot, count)
	for i := range s.slots {
		s.slots[i] = domain.NewSlot()
	}

	spinOpts := []spin.Option{spin.WithLogger(s.logger)}
	if s.frameSet {
		spinOpts = append(spinOpts, spin.WithFrameInterval(s.frameInterval))
	}
	s.spinner = spin.NewController(s.source, s, spinOpts...)

	return s, nil
}

// Roll spins every unlocked die concurrently and blocks until the batch
// settles. It is rejected with a notice while another roll is in flight,
// and completes immediately (without counting) when every die is locked.
func (s *Session) Roll(ctx context.Context) error {
	s.mu.Lock()
	if s.rolling {
		s.mu.Unlock()
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}

	unlocked := make([]int, 0, len(s.slots))
	for i, slot := range s.slots {
		if !slot.Locked {
			unlocked = append(unlocked, i)
		}
	}
	if len(unlocked) == 0 {
		s.mu.Unlock()
		s.notifier.Warn("all dice are locked")
		return domain.ErrAllLocked
	}

	s.rolling = true
	prev := make(map[int]int, len(unlocked))
	for _, i := range unlocked {
		s.slots[i].Animating = true
		prev[i] = s.slots[i].Face
	}
	batchCtx, cancel := context.WithCancel(ctx)
	s.cancelBatch = cancel
	s.mu.Unlock()
	defer cancel()

	results := s.spinner.SpinBatch(batchCtx, unlocked)

	s.mu.Lock()
	for index, face := range results {
		s.slots[index].Face = face
	}
	for _, i := range unlocked {
		s.slots[i].Animating = false
		if _, ok := results[i]; !ok {
			// A spin that failed or was aborted delivered no outcome; its
			// slot must not keep a cosmetic transient face.
			s.slots[i].Face = prev[i]
		}
	}

	completed := len(results) > 0 && batchCtx.Err() == nil
	if completed {
		s.rolls++
		s.history = append(s.history, s.facesLocked())
	}
	rollNum := s.rolls
	sum := domain.Sum(s.facesLocked())
	s.rolling = false
	s.cancelBatch = nil
	s.mu.Unlock()

	if completed {
		s.notifier.Info(fmt.Sprintf("roll #%d: sum %d", rollNum, sum))
	}
	return nil
}

// PutFrame implements ports.FrameSink: a spin task delivers a face for its
// die, which is committed to the slot and forwarded to the renderer with
// the current focus and lock flags.
func (s *Session) PutFrame(index, face int, settled bool) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.slots) {
		s.mu.Unlock()
		return fmt.Errorf("frame for out-of-range slot %d", index)
	}
	slot := s.slots[index]
	slot.Face = face
	if settled {
		slot.Animating = false
	}
	frame := ports.Frame{
		Index:   index,
		Face:    face,
		Settled: settled,
		Focused: index == s.focused,
		Locked:  slot.Locked,
	}
	s.mu.Unlock()

	return s.renderer.Redraw(frame)
}

// AddDie appends a die, up to the maximum of eight.
func (s *Session) AddDie() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	if len(s.slots) >= domain.MaxDice {
		s.notifier.Warn(fmt.Sprintf("maximum %d dice", domain.MaxDice))
		return domain.ErrMaxDice
	}
	s.slots = append(s.slots, domain.NewSlot())
	s.notifier.Info(fmt.Sprintf("added die, now %d", len(s.slots)))
	s.redrawAllLocked()
	return nil
}

// RemoveDie removes the last die, down to the minimum of one. The focus is
// clamped back into range if it pointed at the removed slot.
func (s *Session) RemoveDie() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	if len(s.slots) <= domain.MinDice {
		s.notifier.Warn(fmt.Sprintf("minimum %d die", domain.MinDice))
		return domain.ErrMinDice
	}
	s.slots = s.slots[:len(s.slots)-1]
	if s.focused > len(s.slots)-1 {
		s.focused = len(s.slots) - 1
	}
	s.notifier.Info(fmt.Sprintf("removed die, now %d", len(s.slots)))
	s.redrawAllLocked()
	return nil
}

// SetDiceCount grows or shrinks the slot sequence to n, preserving existing
// slot state where indices overlap.
func (s *Session) SetDiceCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	if n < domain.MinDice || n > domain.MaxDice {
		s.notifier.Warn(fmt.Sprintf("dice count must be between %d and %d", domain.MinDice, domain.MaxDice))
		return domain.ErrCountOutOfRange
	}

	for len(s.slots) < n {
		s.slots = append(s.slots, domain.NewSlot())
	}
	s.slots = s.slots[:n]
	if s.focused > n-1 {
		s.focused = n - 1
	}
	s.notifier.Info(fmt.Sprintf("dice count set to %d", n))
	s.redrawAllLocked()
	return nil
}

// Reset returns every die to face 1, clears all locks, zeroes the roll
// counter, and discards the roll history.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	for _, slot := range s.slots {
		slot.Face = domain.MinFace
		slot.Locked = false
	}
	s.rolls = 0
	s.history = nil
	s.notifier.Info("dice reset")
	s.redrawAllLocked()
	return nil
}

// Navigate moves the focus one cell in the given direction, clamped at the
// grid edges. It is never rejected, even mid-roll.
func (s *Session) Navigate(dir domain.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.focused = domain.Move(s.focused, dir, len(s.slots))
	s.redrawAllLocked()
}

// ToggleLock flips the lock on the focused die.
func (s *Session) ToggleLock() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	slot := s.slots[s.focused]
	slot.Locked = !slot.Locked
	if slot.Locked {
		s.notifier.Info(fmt.Sprintf("die %d locked", s.focused+1))
	} else {
		s.notifier.Info(fmt.Sprintf("die %d unlocked", s.focused+1))
	}
	s.redrawAllLocked()
	return nil
}

// LockAll locks every die.
func (s *Session) LockAll() error {
	return s.setAllLocks(true)
}

// UnlockAll unlocks every die.
func (s *Session) UnlockAll() error {
	return s.setAllLocks(false)
}

func (s *Session) setAllLocks(locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		s.notifier.Warn("already rolling")
		return domain.ErrRolling
	}
	for _, slot := range s.slots {
		slot.Locked = locked
	}
	if locked {
		s.notifier.Info("all dice locked")
	} else {
		s.notifier.Info("all dice unlocked")
	}
	s.redrawAllLocked()
	return nil
}

// Close aborts any in-flight roll so its spin goroutines drain. Partial
// results from an aborted batch are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	cancel := s.cancelBatch
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Snapshot returns a consistent read-only view of the session.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.SlotView, len(s.slots))
	locked := make([]int, 0, len(s.slots))
	for i, slot := range s.slots {
		views[i] = slot.View()
		if slot.Locked {
			locked = append(locked, i)
		}
	}
	faces := s.facesLocked()
	return domain.Snapshot{
		DiceCount:     len(s.slots),
		FocusedIndex:  s.focused,
		Slots:         views,
		LockedIndices: locked,
		Sum:           domain.Sum(faces),
		Frequencies:   domain.Frequencies(faces),
		RollCount:     s.rolls,
		Rolling:       s.rolling,
	}
}

// History returns a copy of the faces recorded for each completed roll.
func (s *Session) History() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]int, len(s.history))
	for i, roll := range s.history {
		out[i] = append([]int(nil), roll...)
	}
	return out
}

// IsRolling reports whether a roll batch is in flight.
func (s *Session) IsRolling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rolling
}

// facesLocked returns the committed faces. Caller must hold mu.
func (s *Session) facesLocked() []int {
	faces := make([]int, len(s.slots))
	for i, slot := range s.slots {
		faces[i] = slot.Face
	}
	return faces
}

// redrawAllLocked pushes a settled frame for every slot so the renderer can
// repaint focus and lock changes. Caller must hold mu. Redraw errors here
// are cosmetic; they are logged, not propagated.
func (s *Session) redrawAllLocked() {
	for i, slot := range s.slots {
		frame := ports.Frame{
			Index:   i,
			Face:    slot.Face,
			Settled: true,
			Focused: i == s.focused,
			Locked:  slot.Locked,
		}
		if err := s.renderer.Redraw(frame); err != nil {
			s.logger.Warn("redraw failed", "die", i, "err", err)
		}
	}
}
