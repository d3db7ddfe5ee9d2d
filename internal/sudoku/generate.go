package sudoku

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return "unknown"
}

// GivensRange returns the inclusive clue-count range puzzles of this
// difficulty are generated into.
func (d Difficulty) GivensRange() (lo, hi int) {
	switch d {
	case Easy:
		return 35, 40
	case Medium:
		return 30, 35
	case Hard:
		return 25, 30
	default:
		return 22, 26
	}
}

// HintBudget is the number of hints a fresh game starts with. Expert gets a
// single hint; see DESIGN.md.
func (d Difficulty) HintBudget() int {
	switch d {
	case Easy:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

type GameParams struct {
	Difficulty Difficulty
	Unique     bool
}

func (p GameParams) String() string {
	return fmt.Sprintf("%s(unique=%t)", p.Difficulty, p.Unique)
}

// Uniform random removal fails more often as clue counts drop, so after
// this many reshuffles the standard path settles for a best-effort grid.
const maxRemovalRetries = 10

// newPuzzle builds a board and its solution for the given parameters.
//
// The seed solution comes from a randomized solve of the empty grid. Clue
// removal then takes one of two paths: Expert puzzles with uniqueness
// required are carved constructively (every tentative removal is verified
// before it is committed, so the result is unique by invariant), all other
// puzzles use shuffled bulk removal with a bounded number of uniqueness
// retries.
func newPuzzle(p GameParams, rnd *rand.Rand) (Board, Solution, error) {
	var empty Board
	solution, ok := SolveOne(&empty, rnd)
	for !ok {
		// A consistent grid always has a completion; a randomized solve
		// of the empty board cannot actually fail, but retrying keeps the
		// invariant local instead of relying on that argument.
		solution, ok = SolveOne(&empty, rnd)
	}

	if p.Difficulty == Expert && p.Unique {
		return carveUnique(solution, rnd), solution, nil
	}
	return carve(p, solution, rnd), solution, nil
}

func solvedBoard(s Solution) (b Board) {
	for i, v := range s {
		b[i] = Cell{Value: v, Given: true}
	}
	return
}

func shuffledPositions(rnd *rand.Rand) []int {
	positions := make([]int, CellCount)
	for i := range positions {
		positions[i] = i
	}
	rnd.Shuffle(len(positions), func(a, b int) {
		positions[a], positions[b] = positions[b], positions[a]
	})
	return positions
}

// carve clears shuffled positions down to a target inside the difficulty's
// givens range. When uniqueness is requested the result is verified and the
// whole removal reshuffled on failure, up to maxRemovalRetries; after that
// the last (possibly non-unique) grid is returned rather than failing.
func carve(p GameParams, solution Solution, rnd *rand.Rand) Board {
	lo, hi := p.Difficulty.GivensRange()
	var board Board
	for attempt := 0; ; attempt++ {
		board = solvedBoard(solution)
		target := lo + rnd.IntN(hi-lo+1)
		givens := CellCount
		for _, i := range shuffledPositions(rnd) {
			board[i] = Cell{}
			givens--
			if givens <= target {
				break
			}
		}
		if !p.Unique || attempt >= maxRemovalRetries || IsUnique(&board) {
			return board
		}
	}
}

// carveUnique removes clues one at a time, keeping each removal only if the
// remaining grid still has exactly one completion. Every intermediate state
// is unique by construction. A pass stops at the lower bound of the Expert
// givens range; in the rare case a pass stalls above the upper bound the
// removal order is reshuffled and the pass repeated.
func carveUnique(solution Solution, rnd *rand.Rand) Board {
	lo, hi := Expert.GivensRange()
	best := solvedBoard(solution)
	bestGivens := CellCount
	for attempt := 0; attempt <= maxRemovalRetries; attempt++ {
		board := solvedBoard(solution)
		givens := CellCount
		for _, i := range shuffledPositions(rnd) {
			if givens <= lo {
				break
			}
			saved := board[i]
			board[i] = Cell{}
			if IsUnique(&board) {
				givens--
			} else {
				board[i] = saved
			}
		}
		if givens <= hi {
			return board
		}
		if givens < bestGivens {
			best, bestGivens = board, givens
		}
	}
	return best
}
