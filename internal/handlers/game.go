package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := sudoku.NewGame(params, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	var playerId *int64
	if claims, loggedIn := middleware.PlayerClaims(r.Context()); loggedIn {
		playerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(
		r.Context(), game, repository.CreateGameSessionParams{PlayerId: playerId},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	move, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	g.updateSession(w, r, func(game *sudoku.Game) error {
		return game.SetCell(move.Row, move.Col, move.Value)
	})
}

func (g *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.Undo() // nothing to undo is a no-op, not an error
		return nil
	})
}

func (g *GameHandler) Redo(w http.ResponseWriter, r *http.Request) {
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.Redo()
		return nil
	})
}

func (g *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.UseHint() // exhausted budget reads as "no hint available"
		return nil
	})
}

func (g *GameHandler) Clear(w http.ResponseWriter, r *http.Request) {
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.ClearPlayerCells()
		return nil
	})
}

func (g *GameHandler) Pause(w http.ResponseWriter, r *http.Request) {
	paused := r.URL.Query().Get("paused") != "0"
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.SetPaused(paused)
		return nil
	})
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	g.updateSession(w, r, func(game *sudoku.Game) error {
		game.Reveal()
		return nil
	})
}

// loadSession fetches the session row and decodes the engine state blob.
// On failure it writes the response itself and reports !ok.
func (g *GameHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.Game, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := sudoku.DecodeGame(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

// updateSession runs one engine command against a stored session and writes
// the updated snapshot back: load, apply, store, respond. Command rejections
// (writes to givens, bad coordinates) come back as 409 with the board
// untouched.
func (g *GameHandler) updateSession(
	w http.ResponseWriter, r *http.Request, apply func(*sudoku.Game) error,
) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	if err := apply(game); err != nil {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	// Paused takes precedence in Status, so derive "won" from the board
	// directly when closing out the session.
	won := !game.Revealed && game.Board.IsComplete()
	if (won || game.Revealed) && session.EndedAt == nil {
		session.EndedAt = endedNow()
	}

	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return
	}
	session, err = g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, repository.UpdateGameSessionParams{
			Won:     &won,
			EndedAt: session.EndedAt,
			State:   &state,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	var filter repository.HighscoreFilter

	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if difficultyStr := query.Get("difficulty"); difficultyStr != "" {
		difficulty, err := sudoku.ParseDifficulty(difficultyStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.Difficulty = &difficulty
	}

	highscores, err := g.repo.FetchHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
