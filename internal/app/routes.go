package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/sudoku-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.db, a.ws, createRand())
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.Move)
	a.router.HandleFunc("POST /game/{id}/undo", game.Undo)
	a.router.HandleFunc("POST /game/{id}/redo", game.Redo)
	a.router.HandleFunc("POST /game/{id}/hint", game.Hint)
	a.router.HandleFunc("POST /game/{id}/clear", game.Clear)
	a.router.HandleFunc("POST /game/{id}/pause", game.Pause)
	a.router.HandleFunc("POST /game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)
	a.router.HandleFunc("GET /highscores", game.Highscores)

	a.router.HandleFunc("GET /auth/status", auth.Status)
	a.router.HandleFunc("POST /auth/register", auth.Register)
	a.router.HandleFunc("POST /auth/login", auth.Login)
	a.router.HandleFunc("POST /auth/logout", auth.Logout)
}
