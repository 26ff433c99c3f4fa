package domain_test

import (
	"testing"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDimensionsFor_Table(t *testing.T) {
	expected := map[int]domain.Dimensions{
		1: {Cols: 1, Rows: 1},
		2: {Cols: 2, Rows: 1},
		3: {Cols: 3, Rows: 1},
		4: {Cols: 2, Rows: 2},
		5: {Cols: 3, Rows: 2},
		6: {Cols: 3, Rows: 2},
		7: {Cols: 4, Rows: 2},
		8: {Cols: 4, Rows: 2},
	}

	for count, want := range expected {
		got := domain.DimensionsFor(count)
		assert.Equal(t, want, got, "count %d", count)
		assert.GreaterOrEqual(t, got.Cols*got.Rows, count, "grid for %d dice must fit them", count)
	}
}

func TestDimensionsFor_OutOfRange(t *testing.T) {
	assert.Equal(t, domain.Dimensions{}, domain.DimensionsFor(0))
	assert.Equal(t, domain.Dimensions{}, domain.DimensionsFor(-3))

	// Fallback keeps four columns and grows rows.
	assert.Equal(t, domain.Dimensions{Cols: 4, Rows: 3}, domain.DimensionsFor(9))
}

func TestCoordRoundTrip(t *testing.T) {
	for count := 1; count <= 8; count++ {
		cols := domain.DimensionsFor(count).Cols
		for i := 0; i < count; i++ {
			row, col := domain.IndexToCoord(i, cols)
			assert.Equal(t, i, domain.CoordToIndex(row, col, cols))
			assert.Less(t, col, cols)
		}
	}
}
