package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var log = logrus.New()

var (
	difficultyFlag = flag.String("difficulty", "easy", "easy, medium, hard or expert")
	uniqueFlag     = flag.Bool("unique", true, "require a unique solution")
	seedFlag       = flag.Uint64("seed", 0, "rng seed, 0 picks a random one")
	logFileFlag    = flag.String("log", "sudoku-cli.log", "diagnostics log file")
)

// Diagnostics go to a rotating file so the terminal stays clean for the
// board.
func setupLogging(path string) error {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

const help = `commands:
  m <row> <col> <value>  place value (1-9) at 0-indexed row/col
  d <row> <col>          clear a cell
  u                      undo         r  redo
  h                      hint         x  clear all player cells
  p                      toggle pause
  f                      forfeit (reveal solution)
  q                      quit`

func printState(game *sudoku.Game) {
	fmt.Println()
	fmt.Print(game.Board.String())
	if conflicts := game.Conflicts(); len(conflicts) > 0 {
		fmt.Printf("conflicts: %v\n", conflicts)
	}
	fmt.Printf(
		"status: %s | moves: %d | hints left: %d | undo: %t | redo: %t\n",
		game.Status(), game.MoveCount(), game.HintsLeft,
		game.CanUndo(), game.CanRedo(),
	)
}

func parseCoords(words []string, n int) ([]int, bool) {
	if len(words) != n {
		fmt.Printf("expected %d arguments\n", n)
		return nil, false
	}
	out := make([]int, n)
	for i, word := range words {
		v, err := strconv.Atoi(word)
		if err != nil {
			fmt.Printf("%q is not a number\n", word)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func runCommand(game *sudoku.Game, line string) (quit bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}

	switch words[0] {
	case "m":
		if args, ok := parseCoords(words[1:], 3); ok {
			if args[2] < 1 || args[2] > sudoku.Size {
				fmt.Println("value must be in 1..9")
				return false
			}
			if err := game.SetCell(args[0], args[1], uint8(args[2])); err != nil {
				fmt.Println(err)
			}
		}
	case "d":
		if args, ok := parseCoords(words[1:], 2); ok {
			if err := game.SetCell(args[0], args[1], 0); err != nil {
				fmt.Println(err)
			}
		}
	case "u":
		if _, ok := game.Undo(); !ok {
			fmt.Println("nothing to undo")
		}
	case "r":
		if _, ok := game.Redo(); !ok {
			fmt.Println("nothing to redo")
		}
	case "h":
		hint, ok := game.UseHint()
		if !ok {
			fmt.Println("no hint available")
		} else {
			fmt.Printf("hint: %d at (%d, %d)\n", hint.Value, hint.Row, hint.Col)
		}
	case "x":
		cleared := game.ClearPlayerCells()
		fmt.Printf("cleared %d cells\n", cleared)
	case "p":
		game.SetPaused(!game.Paused)
	case "f":
		game.Reveal()
	case "q":
		return true
	default:
		fmt.Println(help)
	}
	return false
}

func main() {
	flag.Parse()

	if err := setupLogging(*logFileFlag); err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(1)
	}

	difficulty, err := sudoku.ParseDifficulty(*difficultyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	params := sudoku.GameParams{Difficulty: difficulty, Unique: *uniqueFlag}
	log.WithFields(logrus.Fields{
		"params": params.String(),
		"seed":   seed,
	}).Info("generating puzzle")

	game, err := sudoku.NewGame(params, rnd)
	if err != nil {
		log.WithError(err).Error("generation failed")
		fmt.Fprintln(os.Stderr, "unable to generate a puzzle:", err)
		os.Exit(1)
	}
	log.WithField("givens", game.Board.GivenCount()).Info("puzzle ready")

	fmt.Printf("new %s game (seed %d)\n", params.Difficulty, seed)
	fmt.Println(help)
	printState(game)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if runCommand(game, scanner.Text()) {
			break
		}
		log.WithFields(logrus.Fields{
			"version": game.Version,
			"status":  game.Status().String(),
		}).Debug("command applied")
		printState(game)

		if game.Status() == sudoku.Won {
			fmt.Println("solved!")
			break
		}
	}
}
