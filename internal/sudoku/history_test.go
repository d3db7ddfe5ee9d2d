package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	var h MoveHistory
	h.Record(0, 0, 0, 5)
	h.Record(1, 1, 0, 7)

	move, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, Move{Row: 1, Col: 1, Old: 0, New: 7, Seq: 1}, move)
	assert.Equal(t, 1, h.Cursor)

	move, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, Move{Row: 1, Col: 1, Old: 0, New: 7, Seq: 1}, move)
	assert.Equal(t, 2, h.Cursor)
}

func TestHistoryEmptyOperationsNoOp(t *testing.T) {
	var h MoveHistory
	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryBranchTruncation(t *testing.T) {
	var h MoveHistory
	for i := range 5 {
		h.Record(0, i, 0, uint8(i+1))
	}
	for range 3 {
		_, ok := h.Undo()
		require.True(t, ok)
	}
	assert.True(t, h.CanRedo())

	h.Record(8, 8, 0, 9)

	assert.False(t, h.CanRedo(), "discarded future must be unreachable")
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 3, h.Cursor)
	last := h.Moves[h.Cursor-1]
	assert.Equal(t, 8, last.Row)
}

func TestHistoryBounded(t *testing.T) {
	var h MoveHistory
	for i := range 150 {
		h.Record(i%Size, i/Size%Size, 0, uint8(i%9+1))
	}
	assert.Equal(t, MaxHistory, h.Len())
	assert.Equal(t, MaxHistory, h.Cursor)

	// Oldest entries are the ones dropped.
	assert.Equal(t, 50, h.Moves[0].Seq)
	assert.Equal(t, 149, h.Moves[h.Len()-1].Seq)
}

func TestHistoryEvictionShiftsCursor(t *testing.T) {
	var h MoveHistory
	for i := range MaxHistory {
		h.Record(0, 0, 0, uint8(i%9+1))
	}
	_, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, MaxHistory-1, h.Cursor)

	// Recording truncates the redo branch first, so the log stays capped.
	h.Record(1, 1, 0, 2)
	assert.Equal(t, MaxHistory, h.Len())
	assert.Equal(t, MaxHistory, h.Cursor)
}
