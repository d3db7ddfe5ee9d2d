package handlers

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func testSession(game *sudoku.Game, t *testing.T) *repository.GameSession {
	t.Helper()
	state, err := game.Bytes()
	require.NoError(t, err)
	return &repository.GameSession{
		GameSessionId: 42,
		Difficulty:    game.Difficulty.String(),
		Unique:        game.Unique,
		State:         state,
		StartedAt:     time.Now().UTC(),
	}
}

func newTestGame(t *testing.T) *sudoku.Game {
	t.Helper()
	rnd := rand.New(rand.NewPCG(1, 2))
	game, err := sudoku.NewGame(
		sudoku.GameParams{Difficulty: sudoku.Easy, Unique: true}, rnd,
	)
	require.NoError(t, err)
	return game
}

func emptyCell(t *testing.T, game *sudoku.Game) (int, int) {
	t.Helper()
	for row := range sudoku.Size {
		for col := range sudoku.Size {
			if game.Board.Value(row, col) == 0 {
				return row, col
			}
		}
	}
	t.Fatal("fresh board has no empty cell")
	return 0, 0
}

func TestApplyCommand(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		assert.Error(t, applyCommand(newTestGame(t), "z"))
	})

	t.Run("wrong arity", func(t *testing.T) {
		assert.Error(t, applyCommand(newTestGame(t), "m 1 2"))
	})

	t.Run("bad value", func(t *testing.T) {
		assert.Error(t, applyCommand(newTestGame(t), "m 0 0 12"))
	})

	t.Run("move and undo", func(t *testing.T) {
		game := newTestGame(t)
		row, col := emptyCell(t, game)
		cmd := fmt.Sprintf("m %d %d 5", row, col)
		require.NoError(t, applyCommand(game, cmd))
		assert.Equal(t, uint8(5), game.Board.Value(row, col))
		assert.Equal(t, 1, game.MoveCount())

		require.NoError(t, applyCommand(game, "u"))
		assert.Zero(t, game.Board.Value(row, col))
	})

	t.Run("undo on empty history is not a protocol error", func(t *testing.T) {
		assert.NoError(t, applyCommand(newTestGame(t), "u"))
	})

	t.Run("pause toggles status", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, applyCommand(game, "p 1"))
		assert.Equal(t, sudoku.Paused, game.Status())
		require.NoError(t, applyCommand(game, "p 0"))
		assert.Equal(t, sudoku.Playing, game.Status())
	})
}

func TestParseNewGameDTO(t *testing.T) {
	tests := []struct {
		name    string
		query   map[string][]string
		want    sudoku.GameParams
		wantErr bool
	}{
		{
			name:  "defaults to unique",
			query: map[string][]string{"difficulty": {"easy"}},
			want:  sudoku.GameParams{Difficulty: sudoku.Easy, Unique: true},
		},
		{
			name: "explicit non-unique",
			query: map[string][]string{
				"difficulty": {"expert"}, "unique": {"false"},
			},
			want: sudoku.GameParams{Difficulty: sudoku.Expert, Unique: false},
		},
		{
			name:    "missing difficulty",
			query:   map[string][]string{},
			wantErr: true,
		},
		{
			name:    "bad difficulty",
			query:   map[string][]string{"difficulty": {"impossible"}},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseNewGameDTO(test.query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNewGameSessionDTOSnapshot(t *testing.T) {
	game := newTestGame(t)
	session := testSession(game, t)

	dto := NewGameSessionDTO(session, game)

	assert.Len(t, dto.Grid, sudoku.CellCount)
	assert.Len(t, dto.Givens, sudoku.CellCount)
	assert.NotNil(t, dto.Conflicts)
	assert.Equal(t, "easy", dto.Difficulty)
	assert.Equal(t, 3, dto.HintsLeft)
	assert.False(t, dto.CanUndo)
	assert.False(t, dto.CanRedo)
	assert.Zero(t, dto.MoveCount)
	assert.Equal(t, "42", dto.GameSessionId)
	assert.Nil(t, dto.EndedAt)
}
