package domain

// Snapshot is a consistent read-only view of a session, safe to render from
// while spins mutate the live state behind the session lock.
type Snapshot struct {
	DiceCount     int
	FocusedIndex  int
	Slots         []SlotView
	LockedIndices []int
	Sum           int
	Frequencies   map[int]int
	RollCount     int
	Rolling       bool
}

// Faces returns the committed face values in slot order.
func (s Snapshot) Faces() []int {
	faces := make([]int, len(s.Slots))
	for i, slot := range s.Slots {
		faces[i] = slot.Face
	}
	return faces
}
