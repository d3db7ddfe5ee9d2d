package sudoku

import "math/rand/v2"

// Solution is a fully populated grid satisfying all constraints, row-major.
type Solution [CellCount]uint8

func (s *Solution) At(row, col int) uint8 {
	return s[index(row, col)]
}

func allowed(values *[CellCount]uint8, row, col int, v uint8) bool {
	for i := range Size {
		if values[row*Size+i] == v || values[i*Size+col] == v {
			return false
		}
	}
	boxRow, boxCol := (row/BoxSize)*BoxSize, (col/BoxSize)*BoxSize
	for r := boxRow; r < boxRow+BoxSize; r++ {
		for c := boxCol; c < boxCol+BoxSize; c++ {
			if values[r*Size+c] == v {
				return false
			}
		}
	}
	return true
}

func nextEmpty(values *[CellCount]uint8) (int, bool) {
	for i, v := range values {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}

// fill completes values in place via backtracking. With a nil rnd candidates
// are tried in ascending order; otherwise the order is shuffled per cell,
// which is how the generator obtains varied seed solutions.
func fill(values *[CellCount]uint8, rnd *rand.Rand) bool {
	i, ok := nextEmpty(values)
	if !ok {
		return true
	}
	row, col := i/Size, i%Size

	candidates := [Size]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if rnd != nil {
		rnd.Shuffle(Size, func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
	}
	for _, v := range candidates {
		if allowed(values, row, col, v) {
			values[i] = v
			if fill(values, rnd) {
				return true
			}
			values[i] = 0
		}
	}
	return false
}

// SolveOne finds a completion of the board, or reports that none exists.
// A non-nil rnd randomizes candidate order.
func SolveOne(b *Board, rnd *rand.Rand) (Solution, bool) {
	values := b.Values()
	if !fill(&values, rnd) {
		return Solution{}, false
	}
	return Solution(values), true
}

// CountSolutions counts completions of the board, stopping as soon as limit
// distinct solutions are found. Candidate order is fixed ascending so the
// count is reproducible. Full enumeration is never needed: callers only
// distinguish 0, 1 and >= limit.
func CountSolutions(b *Board, limit int) int {
	values := b.Values()
	count := 0

	var dfs func() bool
	dfs = func() bool {
		i, ok := nextEmpty(&values)
		if !ok {
			count++
			return count >= limit
		}
		row, col := i/Size, i%Size
		for v := uint8(1); v <= Size; v++ {
			if allowed(&values, row, col, v) {
				values[i] = v
				if dfs() {
					return true
				}
				values[i] = 0
			}
		}
		return false
	}
	dfs()
	return count
}

// IsUnique reports whether the board admits exactly one completion.
func IsUnique(b *Board) bool {
	return CountSolutions(b, 2) == 1
}
