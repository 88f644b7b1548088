// Package pathfind runs grid searches. Every strategy shares one runner that
// owns the per-call state: grid, endpoints, options, parent pointers and the
// expansion counter. Nothing outlives a single call.
package pathfind

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// strategy explores from r.start and returns the path to r.goal if found.
type strategy func(r *runner) (gridgraph.Path, bool, error)

var strategies = map[Algorithm]strategy{
	AlgoRandomWalk: (*runner).randomWalk,
	AlgoBFS:        (*runner).bfs,
	AlgoDFS:        (*runner).dfs,
	AlgoIDS:        (*runner).ids,
	AlgoUCS:        (*runner).ucs,
	AlgoGreedy:     (*runner).greedy,
	AlgoAStar:      (*runner).astar,
}

// runner encapsulates mutable search state for one call.
type runner struct {
	grid        gridgraph.Grid
	start, goal gridgraph.Cell
	opts        Options
	cameFrom    map[gridgraph.Cell]gridgraph.Move
	expanded    int
}

// Search runs alg from start to goal on grid, applying any number of
// functional Options.
// Returns ErrOptionViolation for bad options, gridgraph.ErrBadDimensions for
// a grid without cells, ErrUnknownAlgorithm for an unregistered alg, the
// context error on cancellation, or a wrapped OnExpand error.
//
// Unlike the plain functions, Search distinguishes "already at goal"
// (Found == true, empty Path) from "unreachable" (Found == false).
// An out-of-bounds or obstructed start or goal is unreachable.
func Search(alg Algorithm, start, goal gridgraph.Cell, grid gridgraph.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", gridgraph.ErrBadDimensions, grid.Rows, grid.Cols)
	}
	if _, ok := strategies[alg]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	return run(alg, start, goal, grid, o)
}

// run executes a registered strategy with already-validated options.
func run(alg Algorithm, start, goal gridgraph.Cell, grid gridgraph.Grid, o Options) (*Result, error) {
	res := &Result{Algorithm: alg}
	if !grid.Passable(start) || !grid.Passable(goal) {
		return res, nil
	}
	if start == goal {
		res.Found = true
		return res, nil
	}

	r := &runner{
		grid:     grid,
		start:    start,
		goal:     goal,
		opts:     o,
		cameFrom: make(map[gridgraph.Cell]gridgraph.Move),
	}
	path, found, err := strategies[alg](r)
	if err != nil {
		return nil, err
	}
	res.Expanded = r.expanded
	if found {
		res.Found, res.Path = true, path
	}

	return res, nil
}

// expand checks for cancellation, counts the expansion and calls OnExpand.
func (r *runner) expand(c gridgraph.Cell, depth int) error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	r.expanded++
	if err := r.opts.OnExpand(c, depth); err != nil {
		return fmt.Errorf("pathfind: OnExpand error at %s: %w", c, err)
	}
	return nil
}

// pathTo rebuilds the moves from r.start to c by following cameFrom back.
func (r *runner) pathTo(c gridgraph.Cell) gridgraph.Path {
	var p gridgraph.Path
	for c != r.start {
		m := r.cameFrom[c]
		p = append(p, m)
		c = c.Add(m.Opposite())
	}
	slices.Reverse(p)

	return p
}

// plain runs alg with default options and collapses the result to a Path.
func plain(alg Algorithm, start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	grid := gridgraph.Grid{Rows: rows, Cols: cols, Obstacles: obstacles}
	res, err := run(alg, start, goal, grid, DefaultOptions())
	if err != nil || res.Path == nil {
		return gridgraph.Path{}
	}

	return res.Path
}

// RandomWalk steps in uniformly random directions, skipping moves that would
// leave the grid or enter an obstacle, until it reaches goal.
// It gives up after DefaultMaxWalkSteps iterations and returns an empty Path,
// even when goal is reachable.
func RandomWalk(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoRandomWalk, start, goal, obstacles, rows, cols)
}

// BFS returns a shortest path (in moves) using breadth-first search.
func BFS(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoBFS, start, goal, obstacles, rows, cols)
}

// DFS returns a path found by depth-first search that always tries the
// neighbor nearest the goal first. The path is not necessarily shortest.
func DFS(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoDFS, start, goal, obstacles, rows, cols)
}

// IDS returns a shortest path using iterative-deepening depth-first search
// with depth bounds 0..rows×cols-1.
func IDS(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoIDS, start, goal, obstacles, rows, cols)
}

// UCS returns a shortest path using uniform-cost search with unit edge costs.
func UCS(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoUCS, start, goal, obstacles, rows, cols)
}

// GreedyBestFirst returns a path found by always expanding the frontier cell
// nearest the goal. The path is not necessarily shortest.
func GreedyBestFirst(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoGreedy, start, goal, obstacles, rows, cols)
}

// AStar returns a shortest path using A* with the Manhattan heuristic.
func AStar(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path {
	return plain(AlgoAStar, start, goal, obstacles, rows, cols)
}
