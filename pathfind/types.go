// Package pathfind provides tunable options, algorithm identifiers and error
// definitions for grid search.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for Search.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm value or name that is not registered.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// DefaultMaxWalkSteps caps the number of random-walk iterations.
const DefaultMaxWalkSteps = 1000

// Finder is the common signature of every plain search function.
// It returns the moves leading from start to goal, or an empty Path.
type Finder func(start, goal gridgraph.Cell, obstacles gridgraph.ObstacleSet, rows, cols int) gridgraph.Path

// Algorithm identifies one search strategy.
type Algorithm int

const (
	// AlgoRandomWalk moves in uniformly random directions until it hits the goal or gives up.
	AlgoRandomWalk Algorithm = iota
	// AlgoBFS is breadth-first search.
	AlgoBFS
	// AlgoDFS is depth-first search, exploring the neighbor nearest the goal first.
	AlgoDFS
	// AlgoIDS is iterative-deepening depth-first search.
	AlgoIDS
	// AlgoUCS is uniform-cost search.
	AlgoUCS
	// AlgoGreedy is greedy best-first search on Manhattan distance.
	AlgoGreedy
	// AlgoAStar is A* search with the Manhattan heuristic.
	AlgoAStar
)

var algorithmNames = [...]string{
	AlgoRandomWalk: "random",
	AlgoBFS:        "bfs",
	AlgoDFS:        "dfs",
	AlgoIDS:        "ids",
	AlgoUCS:        "ucs",
	AlgoGreedy:     "greedy",
	AlgoAStar:      "astar",
}

// Algorithms lists every registered Algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		all[i] = Algorithm(i)
	}
	return all
}

// String returns the short name of a ("bfs", "astar", ...).
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive short name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Finder returns the plain function implementing a, or nil if a is unknown.
func (a Algorithm) Finder() Finder {
	switch a {
	case AlgoRandomWalk:
		return RandomWalk
	case AlgoBFS:
		return BFS
	case AlgoDFS:
		return DFS
	case AlgoIDS:
		return IDS
	case AlgoUCS:
		return UCS
	case AlgoGreedy:
		return GreedyBestFirst
	case AlgoAStar:
		return AStar
	}
	return nil
}

// Option configures Search via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called before the neighbors of a cell are generated.
	// depth is the number of moves from start to c along the current path.
	// Returning an error aborts the search.
	OnExpand func(c gridgraph.Cell, depth int) error

	// MaxWalkSteps caps random-walk iterations, including iterations whose
	// randomly chosen move was rejected.
	MaxWalkSteps int

	// MaxDepth caps iterative deepening; depths 0..MaxDepth-1 are tried.
	// 0 means rows×cols.
	MaxDepth int

	// Rand drives the random walk. nil uses the math/rand/v2 global source.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnExpand hook
//   - MaxWalkSteps = DefaultMaxWalkSteps
//   - MaxDepth = 0 (rows×cols)
//   - global random source
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnExpand:     func(gridgraph.Cell, int) error { return nil },
		MaxWalkSteps: DefaultMaxWalkSteps,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run on every expansion; returning an
// error from it stops the search.
func WithOnExpand(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxWalkSteps sets the random-walk iteration cap.
//
//	n > 0:  cap at n iterations
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxWalkSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxWalkSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWalkSteps = n
	}
}

// WithMaxDepth sets the iterative-deepening depth cap.
//
//	d > 0:  try depths 0..d-1
//	d == 0: rows×cols
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithRand sets the random source used by the random walk.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// Result holds the outcome of a Search:
//   - Algorithm: the strategy that ran.
//   - Path: moves from start to goal; empty when Found is false or start == goal.
//   - Found: true if the goal was reached (including start == goal).
//   - Expanded: number of cells whose neighbors were generated
//     (iterations, for the random walk).
type Result struct {
	Algorithm Algorithm
	Path      gridgraph.Path
	Found     bool
	Expanded  int
}
