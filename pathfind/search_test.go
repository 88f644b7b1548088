package pathfind_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/pathfind"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	open := gridgraph.Grid{Rows: 3, Cols: 3}

	_, err := pathfind.Search(pathfind.Algorithm(-1), cell(0, 0), cell(2, 2), open)
	require.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	_, err = pathfind.Search(pathfind.AlgoBFS, cell(0, 0), cell(2, 2), gridgraph.Grid{Rows: 0, Cols: 3})
	require.ErrorIs(t, err, gridgraph.ErrBadDimensions)

	_, err = pathfind.Search(pathfind.AlgoRandomWalk, cell(0, 0), cell(2, 2), open, pathfind.WithMaxWalkSteps(0))
	require.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.Search(pathfind.AlgoIDS, cell(0, 0), cell(2, 2), open, pathfind.WithMaxDepth(-1))
	require.ErrorIs(t, err, pathfind.ErrOptionViolation)
}

// TestSearch_FoundDisambiguates shows Result.Found separating "already at
// goal" from "unreachable", which the plain functions cannot.
func TestSearch_FoundDisambiguates(t *testing.T) {
	sealed := gridgraph.Grid{Rows: 3, Cols: 3, Obstacles: gridgraph.NewObstacleSet(cell(1, 2), cell(2, 1))}

	for _, alg := range pathfind.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			here, err := pathfind.Search(alg, cell(0, 0), cell(0, 0), sealed)
			require.NoError(t, err)
			require.True(t, here.Found)
			require.Empty(t, here.Path)
			require.Zero(t, here.Expanded)

			away, err := pathfind.Search(alg, cell(0, 0), cell(2, 2), sealed)
			require.NoError(t, err)
			require.False(t, away.Found)
			require.Empty(t, away.Path)
			require.Equal(t, alg, away.Algorithm)
		})
	}
}

// TestSearch_RandomWalkCap checks the walk stops after exactly MaxWalkSteps iterations.
func TestSearch_RandomWalkCap(t *testing.T) {
	sealed := gridgraph.Grid{Rows: 3, Cols: 3, Obstacles: gridgraph.NewObstacleSet(cell(1, 2), cell(2, 1))}

	res, err := pathfind.Search(pathfind.AlgoRandomWalk, cell(0, 0), cell(2, 2), sealed)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, pathfind.DefaultMaxWalkSteps, res.Expanded)

	res, err = pathfind.Search(pathfind.AlgoRandomWalk, cell(0, 0), cell(2, 2), sealed, pathfind.WithMaxWalkSteps(17))
	require.NoError(t, err)
	require.Equal(t, 17, res.Expanded)
}

// TestSearch_RandomWalkSeeded checks that a fixed source reproduces the same walk.
func TestSearch_RandomWalkSeeded(t *testing.T) {
	g := gridgraph.Grid{Rows: 4, Cols: 4}
	walk := func() *pathfind.Result {
		res, err := pathfind.Search(pathfind.AlgoRandomWalk, cell(0, 0), cell(3, 3), g,
			pathfind.WithRand(rand.New(rand.NewPCG(7, 11))),
			pathfind.WithMaxWalkSteps(100000),
		)
		require.NoError(t, err)
		return res
	}
	first, second := walk(), walk()
	require.True(t, first.Found)
	require.Equal(t, first, second)
	requireWalksTo(t, g, cell(0, 0), cell(3, 3), first.Path)
}

// TestSearch_MaxDepth bounds iterative deepening below the shortest path length.
func TestSearch_MaxDepth(t *testing.T) {
	g := gridgraph.Grid{Rows: 5, Cols: 5}

	res, err := pathfind.Search(pathfind.AlgoIDS, cell(0, 0), cell(4, 4), g, pathfind.WithMaxDepth(8))
	require.NoError(t, err)
	require.False(t, res.Found, "depths 0..7 cannot reach a goal 8 moves away")

	res, err = pathfind.Search(pathfind.AlgoIDS, cell(0, 0), cell(4, 4), g, pathfind.WithMaxDepth(9))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Path, 8)
}

// TestSearch_Cancelled verifies a cancelled context aborts every strategy.
func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := gridgraph.Grid{Rows: 5, Cols: 5}

	for _, alg := range pathfind.Algorithms() {
		_, err := pathfind.Search(alg, cell(0, 0), cell(4, 4), g, pathfind.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled, alg.String())
	}
}

// TestSearch_OnExpand counts hook calls and checks hook errors propagate.
func TestSearch_OnExpand(t *testing.T) {
	g := gridgraph.Grid{Rows: 3, Cols: 3}

	var seen []gridgraph.Cell
	res, err := pathfind.Search(pathfind.AlgoAStar, cell(0, 0), cell(2, 2), g,
		pathfind.WithOnExpand(func(c gridgraph.Cell, depth int) error {
			require.Equal(t, gridgraph.Manhattan(cell(0, 0), c), depth)
			seen = append(seen, c)
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, len(seen), res.Expanded)
	require.Equal(t, []gridgraph.Cell{
		cell(0, 0), cell(0, 1), cell(1, 0), cell(0, 2),
		cell(1, 1), cell(2, 0), cell(1, 2), cell(2, 1),
	}, seen)

	stop := errors.New("stop here")
	for _, alg := range pathfind.Algorithms() {
		_, err := pathfind.Search(alg, cell(0, 0), cell(2, 2), g,
			pathfind.WithOnExpand(func(gridgraph.Cell, int) error { return stop }),
		)
		require.ErrorIs(t, err, stop, alg.String())
	}
}
