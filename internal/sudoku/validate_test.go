package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows parses nine strings of nine runes each, '.' or '0' meaning
// empty. Filled cells are marked as givens.
func boardFromRows(t *testing.T, rows [Size]string) Board {
	t.Helper()
	var b Board
	for r, row := range rows {
		require.Len(t, row, Size)
		for c, ch := range row {
			if ch == '.' || ch == '0' {
				continue
			}
			require.GreaterOrEqual(t, ch, '1')
			require.LessOrEqual(t, ch, '9')
			b[index(r, c)] = Cell{Value: uint8(ch - '0'), Given: true}
		}
	}
	return b
}

var solvedRows = [Size]string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

func TestIsValidPlacement(t *testing.T) {
	var b Board
	b[index(0, 0)] = Cell{Value: 5}

	tests := []struct {
		name  string
		row   int
		col   int
		value uint8
		want  bool
	}{
		{"empty peer rows", 4, 4, 5, true},
		{"same row", 0, 8, 5, false},
		{"same column", 8, 0, 5, false},
		{"same box", 1, 1, 5, false},
		{"same box different value", 1, 1, 6, true},
		{"own cell excluded", 0, 0, 5, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, b.IsValidPlacement(test.row, test.col, test.value))
		})
	}
}

func TestConflictsSymmetric(t *testing.T) {
	var b Board
	b[index(0, 0)] = Cell{Value: 7}
	b[index(0, 5)] = Cell{Value: 7} // row clash
	b[index(6, 0)] = Cell{Value: 7} // column clash
	b[index(4, 4)] = Cell{Value: 7} // no clash

	conflicts := b.Conflicts()
	assert.ElementsMatch(t, []Point{{0, 0}, {0, 5}, {6, 0}}, conflicts)
}

func TestConflictsEmptyBoard(t *testing.T) {
	var b Board
	assert.Empty(t, b.Conflicts())
}

func TestIsComplete(t *testing.T) {
	solved := boardFromRows(t, solvedRows)
	assert.True(t, solved.IsComplete())
	assert.Empty(t, solved.Conflicts())

	partial := solved
	partial[index(3, 3)] = Cell{}
	assert.False(t, partial.IsComplete())

	broken := solved
	broken[index(0, 0)] = Cell{Value: broken.Value(0, 1), Given: true}
	assert.False(t, broken.IsComplete())
	assert.NotEmpty(t, broken.Conflicts())
}
