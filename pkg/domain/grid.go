package domain

// Dimensions is a (columns, rows) pair for the dice grid.
type Dimensions struct {
	Cols int
	Rows int
}

// gridTable is the fixed layout per dice count. Counts 5 and 7 deliberately
// leave one or two cells empty; that is the documented layout, not a bug.
var gridTable = map[int]Dimensions{
	1: {Cols: 1, Rows: 1},
	2: {Cols: 2, Rows: 1},
	3: {Cols: 3, Rows: 1},
	4: {Cols: 2, Rows: 2},
	5: {Cols: 3, Rows: 2},
	6: {Cols: 3, Rows: 2},
	7: {Cols: 4, Rows: 2},
	8: {Cols: 4, Rows: 2},
}

// DimensionsFor maps a dice count to its grid dimensions. Counts outside
// [MinDice, MaxDice] are a caller contract violation; the fallback keeps four
// columns and grows rows so a bad caller still gets a usable grid.
func DimensionsFor(count int) Dimensions {
	if d, ok := gridTable[count]; ok {
		return d
	}
	if count <= 0 {
		return Dimensions{}
	}
	return Dimensions{Cols: 4, Rows: (count + 3) / 4}
}

// IndexToCoord converts a linear slot index to (row, col) for the given
// column count.
func IndexToCoord(index, cols int) (row, col int) {
	return index / cols, index % cols
}

// CoordToIndex is the inverse of IndexToCoord.
func CoordToIndex(row, col, cols int) int {
	return row*cols + col
}
