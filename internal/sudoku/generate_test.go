package sudoku

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGivensRangeAllDifficulties(t *testing.T) {
	t.Parallel()

	difficulties := []Difficulty{Easy, Medium, Hard, Expert}
	for _, difficulty := range difficulties {
		t.Run(difficulty.String(), func(t *testing.T) {
			t.Parallel()
			rnd := rand.New(rand.NewPCG(7, uint64(difficulty)))
			for range 5 {
				params := GameParams{Difficulty: difficulty, Unique: true}
				board, solution, err := newPuzzle(params, rnd)
				require.NoError(t, err)

				lo, hi := difficulty.GivensRange()
				givens := board.GivenCount()
				assert.GreaterOrEqual(t, givens, lo)
				assert.LessOrEqual(t, givens, hi)

				// Givens must agree with the solution by construction.
				for row := range Size {
					for col := range Size {
						if board.IsGiven(row, col) {
							assert.Equal(t,
								solution.At(row, col), board.Value(row, col))
						}
					}
				}
				assert.Empty(t, board.Conflicts())
			}
		})
	}
}

func TestExpertGenerationAlwaysUnique(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Difficulty: Expert, Unique: true}
	for attempt := range 50 {
		board, _, err := newPuzzle(params, rnd)
		require.NoError(t, err)
		require.True(t, IsUnique(&board),
			"expert board must be unique on first construction (attempt %d)", attempt)

		lo, hi := Expert.GivensRange()
		givens := board.GivenCount()
		require.GreaterOrEqual(t, givens, lo)
		require.LessOrEqual(t, givens, hi)
	}
}

func TestStandardPathSolvable(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(3, 4))
	for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
		params := GameParams{Difficulty: difficulty, Unique: false}
		board, solution, err := newPuzzle(params, rnd)
		require.NoError(t, err)

		_, ok := SolveOne(&board, nil)
		require.True(t, ok, "generated board must be solvable")

		givens := board.GivenCount()
		lo, hi := difficulty.GivensRange()
		assert.GreaterOrEqual(t, givens, lo)
		assert.LessOrEqual(t, givens, hi)
		assert.NotZero(t, solution[0])
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{"HARD", Hard, false},
		{"expert", Expert, false},
		{"nightmare", 0, true},
		{"", 0, true},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%q", test.input), func(t *testing.T) {
			got, err := ParseDifficulty(test.input)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestHintBudgets(t *testing.T) {
	assert.Equal(t, 3, Easy.HintBudget())
	assert.Equal(t, 2, Medium.HintBudget())
	assert.Equal(t, 1, Hard.HintBudget())
	assert.Equal(t, 1, Expert.HintBudget())
}
