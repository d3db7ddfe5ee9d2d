package sudoku

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math/rand/v2"
)

type Status int

const (
	Playing Status = iota
	Won
	Paused
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Paused:
		return "paused"
	}
	return "playing"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	ErrOutOfBounds = errors.New("cell coordinates out of bounds")
	ErrGivenCell   = errors.New("cannot modify a given cell")
	ErrGameOver    = errors.New("game is over")
)

// Game is one puzzle session: board, its unique reference solution, the
// bounded move history and the remaining hint budget. All four are created
// together by NewGame and replaced together by the next one. Fields are
// exported for gob round-trips; callers mutate only through the command
// methods, so every board change flows through the history.
type Game struct {
	GameParams
	Board     Board
	Solution  Solution
	History   MoveHistory
	HintsLeft int
	Paused    bool
	Revealed  bool

	// Version increments on every mutation. A presentation layer can poll
	// it instead of diffing snapshots.
	Version uint64
}

// NewGame generates a fresh puzzle at the requested difficulty.
func NewGame(params GameParams, rnd *rand.Rand) (*Game, error) {
	board, solution, err := newPuzzle(params, rnd)
	if err != nil {
		return nil, err
	}
	return &Game{
		GameParams: params,
		Board:      board,
		Solution:   solution,
		HintsLeft:  params.Difficulty.HintBudget(),
	}, nil
}

func DecodeGame(buf []byte) (*Game, error) {
	var game Game
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g *Game) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(g)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Game) touch() {
	g.Version++
}

// Status derives the game phase. Paused wins over everything, then Won iff
// the board is complete.
func (g *Game) Status() Status {
	if g.Paused {
		return Paused
	}
	// A revealed board is complete but was not solved by the player.
	if !g.Revealed && g.Board.IsComplete() {
		return Won
	}
	return Playing
}

// SetCell applies a player change at (row, col): a value in [1,9] or 0 to
// clear. Writes to given cells and out-of-range coordinates are rejected
// with the board untouched. The change is recorded in the history.
func (g *Game) SetCell(row, col int, value uint8) error {
	if !InBounds(row, col) || value > Size {
		return ErrOutOfBounds
	}
	if g.Revealed {
		return ErrGameOver
	}
	if g.Board.IsGiven(row, col) {
		return ErrGivenCell
	}
	old := g.Board.Value(row, col)
	if old == value {
		return nil
	}
	g.History.Record(row, col, old, value)
	g.Board[index(row, col)] = Cell{Value: value}
	g.touch()
	return nil
}

// Undo reverts the latest applied move, if any.
func (g *Game) Undo() (Move, bool) {
	move, ok := g.History.Undo()
	if !ok {
		return Move{}, false
	}
	g.Board[index(move.Row, move.Col)] = Cell{Value: move.Old}
	g.touch()
	return move, true
}

// Redo re-applies the move just past the cursor, if any.
func (g *Game) Redo() (Move, bool) {
	move, ok := g.History.Redo()
	if !ok {
		return Move{}, false
	}
	g.Board[index(move.Row, move.Col)] = Cell{Value: move.New}
	g.touch()
	return move, true
}

// UseHint surfaces the next correct placement, applies it to the board as a
// recorded move and spends one hint. With no budget left it fails closed.
func (g *Game) UseHint() (Hint, bool) {
	if g.HintsLeft <= 0 || g.Revealed {
		return Hint{}, false
	}
	hint, ok := NextHint(&g.Board, &g.Solution)
	if !ok {
		return Hint{}, false
	}
	old := g.Board.Value(hint.Row, hint.Col)
	g.History.Record(hint.Row, hint.Col, old, hint.Value)
	g.Board[index(hint.Row, hint.Col)] = Cell{Value: hint.Value}
	g.HintsLeft--
	g.touch()
	return hint, true
}

// ClearPlayerCells removes every player-entered value, leaving givens
// untouched, and resets the history. Returns how many cells were cleared.
func (g *Game) ClearPlayerCells() int {
	cleared := 0
	for i, c := range g.Board {
		if !c.Given && c.Value != 0 {
			g.Board[i] = Cell{}
			cleared++
		}
	}
	g.History.Reset()
	if cleared > 0 {
		g.touch()
	}
	return cleared
}

// Reveal fills the board from the solution, ending the game. Used by
// forfeit; a revealed game never counts as won.
func (g *Game) Reveal() {
	for i, v := range g.Solution {
		if !g.Board[i].Given {
			g.Board[i] = Cell{Value: v}
		}
	}
	g.Revealed = true
	g.touch()
}

func (g *Game) SetPaused(paused bool) {
	if g.Paused != paused {
		g.Paused = paused
		g.touch()
	}
}

func (g *Game) Conflicts() []Point {
	return g.Board.Conflicts()
}

// MoveCount is the number of applied moves, i.e. the history cursor.
func (g *Game) MoveCount() int {
	return g.History.Cursor
}

func (g *Game) CanUndo() bool { return g.History.CanUndo() }
func (g *Game) CanRedo() bool { return g.History.CanRedo() }
