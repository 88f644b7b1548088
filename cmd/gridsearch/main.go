// Command gridsearch runs the pathfind strategies over an ASCII maze and logs
// how each one fared.
//
// Usage:
//
//	gridsearch [-maze file] [-algo all|random|bfs|dfs|ids|ucs|greedy|astar] [-seed n] [-level info]
//
// Maze files use '#' for walls, '.' for floor, 'S' for the start and 'G' for
// the goal, one row per line.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/clilog"
	"github.com/katalvlaran/gridsearch/pathfind"
)

var defaultMaze = []string{
	"S..#.......",
	".#.#.###.#.",
	".#...#...#.",
	".#####.###.",
	".....#.....",
	"####.#.###.",
	"......#..#G",
}

func main() {
	mazeFile := flag.String("maze", "", "maze file (default: built-in maze)")
	algo := flag.String("algo", "all", "algorithm name or \"all\"")
	seed := flag.Uint64("seed", 0, "random-walk seed (0: unseeded)")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	logger, err := clilog.New(os.Stderr, "gridsearch", *level)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}

	lines := defaultMaze
	if *mazeFile != "" {
		raw, err := os.ReadFile(*mazeFile)
		if err != nil {
			logger.Fatal("read maze", "file", *mazeFile, "err", err)
		}
		lines = strings.Fields(string(raw))
	}
	m, err := gridgraph.ParseASCII(lines)
	if err != nil {
		logger.Fatal("parse maze", "err", err)
	}
	logger.Debug("maze loaded",
		"rows", m.Rows, "cols", m.Cols, "walls", len(m.Obstacles),
		"start", m.Start, "goal", m.Goal,
		"regions", len(m.Components()), "reachable", m.Connected(m.Start, m.Goal))

	algs := pathfind.Algorithms()
	if *algo != "all" {
		a, err := pathfind.ParseAlgorithm(*algo)
		if err != nil {
			logger.Fatal("unknown algorithm", "algo", *algo, "err", err)
		}
		algs = []pathfind.Algorithm{a}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, alg := range algs {
		opts := []pathfind.Option{pathfind.WithContext(ctx)}
		if *seed != 0 {
			opts = append(opts, pathfind.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
		}

		began := time.Now()
		res, err := pathfind.Search(alg, m.Start, m.Goal, m.Grid, opts...)
		if err != nil {
			logger.Error("search failed", "algorithm", alg, "err", err)
			continue
		}
		logger.Info("search done",
			"algorithm", alg,
			"found", res.Found,
			"moves", len(res.Path),
			"expanded", res.Expanded,
			"elapsed", time.Since(began))
		logger.Debug("path", "algorithm", alg, "moves", res.Path.String())
	}
}
