package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// GameSession is a stored puzzle session. State holds the engine's opaque
// gob blob; the scalar columns are denormalized for querying.
type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Difficulty    string
	Unique        bool
	Won           bool
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func (q *Queries) CreateGameSession(
	ctx context.Context, game *sudoku.Game, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"difficulty": game.Difficulty.String(),
		"unique":     game.Unique,
		"won":        false,
		"state":      state,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, difficulty, "unique", won, state
		)
		VALUES (
			@player_id, @difficulty, @unique, @won, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Won     *bool
	EndedAt *time.Time
	State   *[]byte
}

func (p UpdateGameSessionParams) setClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}
	parts = append(parts, "updated_at = now()")

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.setClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
