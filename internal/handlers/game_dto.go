package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type NewGameDTO struct {
	Difficulty string `schema:"difficulty,required"`
	Unique     *bool  `schema:"unique"`
}

func ParseNewGameDTO(src map[string][]string) (sudoku.GameParams, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return sudoku.GameParams{}, err
	}

	difficulty, err := sudoku.ParseDifficulty(dto.Difficulty)
	if err != nil {
		return sudoku.GameParams{}, err
	}

	// Uniqueness defaults on; clients opt out explicitly.
	unique := true
	if dto.Unique != nil {
		unique = *dto.Unique
	}
	return sudoku.GameParams{Difficulty: difficulty, Unique: unique}, nil
}

type MoveDTO struct {
	Row   int   `schema:"row,required"`
	Col   int   `schema:"col,required"`
	Value uint8 `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameSessionDTO is the full state snapshot the presentation layer redraws
// from: the grid with provenance, the derived conflict set and status, and
// the availability flags for the session controls.
type GameSessionDTO struct {
	GameSessionId string         `json:"game_session_id"`
	Grid          []uint8        `json:"grid"`
	Givens        []bool         `json:"givens"`
	Conflicts     []sudoku.Point `json:"conflicts"`
	Status        sudoku.Status  `json:"status"`
	Difficulty    string         `json:"difficulty"`
	Unique        bool           `json:"unique"`
	HintsLeft     int            `json:"hints_left"`
	CanUndo       bool           `json:"can_undo"`
	CanRedo       bool           `json:"can_redo"`
	MoveCount     int            `json:"move_count"`
	Version       uint64         `json:"version"`
	StartedAt     int64          `json:"started_at"`
	EndedAt       *int64         `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(session *repository.GameSession, g *sudoku.Game) *GameSessionDTO {
	grid := make([]uint8, sudoku.CellCount)
	givens := make([]bool, sudoku.CellCount)
	for i, cell := range g.Board {
		grid[i] = cell.Value
		givens[i] = cell.Given
	}

	conflicts := g.Conflicts()
	if conflicts == nil {
		conflicts = []sudoku.Point{}
	}

	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}

	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Grid:          grid,
		Givens:        givens,
		Conflicts:     conflicts,
		Status:        g.Status(),
		Difficulty:    g.Difficulty.String(),
		Unique:        g.Unique,
		HintsLeft:     g.HintsLeft,
		CanUndo:       g.CanUndo(),
		CanRedo:       g.CanRedo(),
		MoveCount:     g.MoveCount(),
		Version:       g.Version,
		StartedAt:     session.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func endedNow() *time.Time {
	now := time.Now().UTC()
	return &now
}
