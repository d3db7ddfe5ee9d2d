package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// Highscore is a finished, won session ranked by solve time.
type Highscore struct {
	GameSessionId string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Difficulty    string  `json:"difficulty"`
	Unique        bool    `json:"unique"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username   *string
	Difficulty *sudoku.Difficulty
}

func (f HighscoreFilter) whereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = f.Difficulty.String()
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) FetchHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		game_session_id::text,
		username,
		difficulty,
		"unique",
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		won = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.whereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
