package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var commandNargs = map[string]int{
	"g": 0, // get snapshot
	"m": 3, // move: m <row> <col> <value>, value 0 clears
	"u": 0, // undo
	"r": 0, // redo
	"h": 0, // hint
	"x": 0, // clear player cells
	"p": 1, // pause: p 0|1
	"f": 0, // forfeit (reveal)
}

func parseInts(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, word := range words {
		n, err := strconv.Atoi(word)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		out[i] = n
	}
	return out, nil
}

// applyCommand executes one one-letter command against the game. Engine
// no-ops (empty undo, exhausted hints) are not protocol errors: the client
// sees the unchanged snapshot.
func applyCommand(game *sudoku.Game, command string) error {
	parts := strings.Split(strings.TrimSpace(command), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "m":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		if args[2] < 0 || args[2] > sudoku.Size {
			return fmt.Errorf("value must be in 0..9")
		}
		return game.SetCell(args[0], args[1], uint8(args[2]))
	case "u":
		game.Undo()
	case "r":
		game.Redo()
	case "h":
		game.UseHint()
	case "x":
		game.ClearPlayerCells()
	case "p":
		game.SetPaused(parts[1] != "0")
	case "f":
		game.Reveal()
	}
	return nil
}

// ConnectWS upgrades to a websocket and runs the same load-apply-store loop
// as the HTTP command handlers, one text message per command, answering
// each with a fresh session snapshot.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	if err = conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
		g.logger.Error("unable to send initial state", "error", err)
		return
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err, websocket.CloseGoingAway, websocket.CloseNormalClosure,
			) {
				g.logger.Error("websocket closed unexpectedly", "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if err := applyCommand(game, string(message)); err != nil {
			if err := conn.WriteJSON(wrapError(err)); err != nil {
				g.logger.Error("unable to send error", "error", err)
				return
			}
			continue
		}

		won := !game.Revealed && game.Board.IsComplete()
		if (won || game.Revealed) && session.EndedAt == nil {
			session.EndedAt = endedNow()
		}

		state, err := game.Bytes()
		if err != nil {
			g.logger.Error("unable to serialize game state", "error", err)
			return
		}

		session, err = g.repo.UpdateGameSession(
			r.Context(), session.GameSessionId,
			repository.UpdateGameSessionParams{
				Won:     &won,
				EndedAt: session.EndedAt,
				State:   &state,
			},
		)
		if err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			return
		}

		if err = conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.logger.Error("unable to send updated state", "error", err)
			return
		}
	}
}
