package domain

// Slot is one die's state at a fixed grid position.
type Slot struct {
	// Face is the currently displayed committed value, in [1,6].
	Face int

	// Locked excludes the slot from the next roll.
	Locked bool

	// Animating is true only while a spin is in flight for this slot.
	Animating bool
}

// NewSlot creates a fresh slot showing face 1, unlocked.
func NewSlot() *Slot {
	return &Slot{Face: MinFace}
}

// SlotView is a read-only copy of a slot, safe to hand to a renderer.
type SlotView struct {
	Face      int
	Locked    bool
	Animating bool
}

// View snapshots the slot.
func (s *Slot) View() SlotView {
	return SlotView{Face: s.Face, Locked: s.Locked, Animating: s.Animating}
}
