package domain

// Direction is a cardinal focus movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Move returns the focused index after moving in the given direction on the
// grid for count dice. Movement clamps at grid edges rather than wrapping, so
// moving off an edge returns current unchanged.
func Move(current int, dir Direction, count int) int {
	cols := DimensionsFor(count).Cols
	if cols == 0 {
		return current
	}

	switch dir {
	case DirUp:
		return max(0, current-cols)
	case DirDown:
		return min(count-1, current+cols)
	case DirLeft:
		return max(0, current-1)
	case DirRight:
		return min(count-1, current+1)
	}
	return current
}
