package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var partialRows = [Size]string{
	"53..7....",
	"6..195...",
	".98....6.",
	"8...6...3",
	"4..8.3..1",
	"7...2...6",
	".6....28.",
	"...419..5",
	"....8..79",
}

func TestSolveOneDeterministic(t *testing.T) {
	b := boardFromRows(t, partialRows)
	solution, ok := SolveOne(&b, nil)
	require.True(t, ok)

	want := boardFromRows(t, solvedRows)
	for i := range solution {
		assert.Equal(t, want[i].Value, solution[i])
	}
}

func TestSolveOnePreservesGivens(t *testing.T) {
	b := boardFromRows(t, partialRows)
	solution, ok := SolveOne(&b, nil)
	require.True(t, ok)
	for row := range Size {
		for col := range Size {
			if v := b.Value(row, col); v != 0 {
				assert.Equal(t, v, solution.At(row, col))
			}
		}
	}
}

func TestSolveOneUnsatisfiable(t *testing.T) {
	var b Board
	// Two equal values in one row leave no completion.
	b[index(0, 0)] = Cell{Value: 1, Given: true}
	b[index(0, 1)] = Cell{Value: 1, Given: true}
	_, ok := SolveOne(&b, nil)
	assert.False(t, ok)
}

func TestSolveOneRandomizedIsValid(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	var empty Board
	solution, ok := SolveOne(&empty, rnd)
	require.True(t, ok)

	b := solvedBoard(solution)
	assert.True(t, b.IsComplete())
}

func TestCountSolutions(t *testing.T) {
	t.Run("unique puzzle", func(t *testing.T) {
		b := boardFromRows(t, partialRows)
		assert.Equal(t, 1, CountSolutions(&b, 2))
		assert.True(t, IsUnique(&b))
	})

	t.Run("solved grid", func(t *testing.T) {
		b := boardFromRows(t, solvedRows)
		assert.Equal(t, 1, CountSolutions(&b, 2))
	})

	t.Run("sparse grid caps at limit", func(t *testing.T) {
		var b Board
		b[index(0, 0)] = Cell{Value: 1, Given: true}
		assert.Equal(t, 2, CountSolutions(&b, 2))
		assert.False(t, IsUnique(&b))
	})

	t.Run("unsatisfiable", func(t *testing.T) {
		var b Board
		b[index(0, 0)] = Cell{Value: 1, Given: true}
		b[index(0, 1)] = Cell{Value: 1, Given: true}
		assert.Equal(t, 0, CountSolutions(&b, 2))
		assert.False(t, IsUnique(&b))
	})
}
