package sudoku

// MaxHistory bounds how many moves are retained. When the log would grow
// past it, the oldest applied moves are evicted.
const MaxHistory = 100

// Move is one reversible transition of a single cell. Immutable once
// recorded.
type Move struct {
	Row int
	Col int
	Old uint8
	New uint8
	Seq int
}

// MoveHistory is an append-only move log with a cursor separating applied
// moves (index < Cursor) from redo candidates (index >= Cursor). Fields are
// exported for gob round-trips; mutate only through the methods.
type MoveHistory struct {
	Moves   []Move
	Cursor  int
	NextSeq int
}

// Record appends a move at the cursor, discarding any redo branch beyond it.
// If the log then exceeds MaxHistory, the oldest moves are evicted and the
// cursor shifted down to match.
func (h *MoveHistory) Record(row, col int, oldValue, newValue uint8) Move {
	move := Move{Row: row, Col: col, Old: oldValue, New: newValue, Seq: h.NextSeq}
	h.NextSeq++

	h.Moves = append(h.Moves[:h.Cursor], move)
	h.Cursor = len(h.Moves)

	if excess := len(h.Moves) - MaxHistory; excess > 0 {
		h.Moves = append(h.Moves[:0], h.Moves[excess:]...)
		h.Cursor -= excess
	}
	return move
}

// Undo steps the cursor back and returns the move to revert. The caller
// applies the move's Old value to the board.
func (h *MoveHistory) Undo() (Move, bool) {
	if !h.CanUndo() {
		return Move{}, false
	}
	h.Cursor--
	return h.Moves[h.Cursor], true
}

// Redo returns the move at the cursor and steps past it. The caller applies
// the move's New value to the board.
func (h *MoveHistory) Redo() (Move, bool) {
	if !h.CanRedo() {
		return Move{}, false
	}
	move := h.Moves[h.Cursor]
	h.Cursor++
	return move, true
}

func (h *MoveHistory) CanUndo() bool {
	return h.Cursor > 0
}

func (h *MoveHistory) CanRedo() bool {
	return h.Cursor < len(h.Moves)
}

func (h *MoveHistory) Len() int {
	return len(h.Moves)
}

func (h *MoveHistory) Reset() {
	h.Moves = nil
	h.Cursor = 0
}
