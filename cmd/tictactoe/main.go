// Command tictactoe plays a game of tic-tac-toe in which both sides follow
// minimax, logging every move.
//
// Usage:
//
//	tictactoe [-board "X.O/.X./..."] [-level info]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridsearch/internal/clilog"
	"github.com/katalvlaran/gridsearch/tictactoe"
)

func main() {
	start := flag.String("board", ".........", "starting position, nine glyphs from \".XO\"")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	logger, err := clilog.New(os.Stderr, "tictactoe", *level)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}

	b, err := tictactoe.ParseBoard(*start)
	if err != nil {
		logger.Fatal("parse board", "board", *start, "err", err)
	}
	logger.Debug("position", "to_move", tictactoe.Player(b), "value", tictactoe.Value(b))

	for {
		a, ok := tictactoe.Minimax(b)
		if !ok {
			break
		}
		player := tictactoe.Player(b)
		if b, err = tictactoe.Result(b, a); err != nil {
			logger.Fatal("apply move", "player", player, "action", a, "err", err)
		}
		logger.Info("move", "player", player, "action", a)
	}

	fmt.Println(b)
	switch tictactoe.Utility(b) {
	case 1:
		logger.Info("game over", "winner", tictactoe.X)
	case -1:
		logger.Info("game over", "winner", tictactoe.O)
	default:
		logger.Info("game over", "winner", "draw")
	}
}
