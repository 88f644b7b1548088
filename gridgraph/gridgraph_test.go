package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, tc.cols, nil)
			if !errors.Is(err, gridgraph.ErrBadDimensions) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestInBounds checks InBounds and Passable on a 2×3 grid with one obstacle.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 3, gridgraph.NewObstacleSet(gridgraph.Cell{Row: 1, Col: 1}))
	require.NoError(t, err)

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds%s", c)
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds%s", c)
		assert.False(t, g.Passable(c), "Passable%s", c)
	}
	assert.False(t, g.Passable(gridgraph.Cell{Row: 1, Col: 1}), "obstacle must not be passable")
	assert.True(t, g.Passable(gridgraph.Cell{Row: 0, Col: 1}))
}

// TestNeighbors_DirectionsOrder verifies neighbors come back in Up, Down, Left, Right order
// with off-grid and blocked cells removed.
func TestNeighbors_DirectionsOrder(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3, nil)
	require.NoError(t, err)

	center := gridgraph.Cell{Row: 1, Col: 1}
	got := g.Neighbors(center)
	want := []gridgraph.Step{
		{To: gridgraph.Cell{Row: 0, Col: 1}, Move: gridgraph.Up},
		{To: gridgraph.Cell{Row: 2, Col: 1}, Move: gridgraph.Down},
		{To: gridgraph.Cell{Row: 1, Col: 0}, Move: gridgraph.Left},
		{To: gridgraph.Cell{Row: 1, Col: 2}, Move: gridgraph.Right},
	}
	require.Equal(t, want, got)

	// corner with an obstacle to the right
	g.Obstacles = gridgraph.NewObstacleSet(gridgraph.Cell{Row: 0, Col: 1})
	got = g.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	require.Equal(t, []gridgraph.Step{{To: gridgraph.Cell{Row: 1, Col: 0}, Move: gridgraph.Down}}, got)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Manhattan(gridgraph.Cell{Row: 2, Col: 2}, gridgraph.Cell{Row: 2, Col: 2}))
	assert.Equal(t, 8, gridgraph.Manhattan(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4}))
	assert.Equal(t, 5, gridgraph.Manhattan(gridgraph.Cell{Row: 3, Col: -1}, gridgraph.Cell{Row: 0, Col: 1}))
}

func TestMove_StringAndOpposite(t *testing.T) {
	for _, m := range gridgraph.Directions {
		assert.Equal(t, gridgraph.Cell{}, gridgraph.Cell{}.Add(m).Add(m.Opposite()))
	}
	assert.Equal(t, gridgraph.Down, gridgraph.Up.Opposite())
	assert.Equal(t, "down down right", gridgraph.Path{gridgraph.Down, gridgraph.Down, gridgraph.Right}.String())
	assert.Equal(t, "(3,4)", gridgraph.Cell{Row: 3, Col: 4}.String())
}

//----------------------------------------------------------------------------//
// Walk Tests
//----------------------------------------------------------------------------//

func TestWalk(t *testing.T) {
	obstacles := gridgraph.NewObstacleSet(gridgraph.Cell{Row: 1, Col: 1})
	g, err := gridgraph.NewGrid(3, 3, obstacles)
	require.NoError(t, err)
	start := gridgraph.Cell{}

	t.Run("Valid", func(t *testing.T) {
		end, err := g.Walk(start, gridgraph.Path{gridgraph.Right, gridgraph.Right, gridgraph.Down, gridgraph.Down})
		require.NoError(t, err)
		require.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, end)
	})
	t.Run("Empty", func(t *testing.T) {
		end, err := g.Walk(start, nil)
		require.NoError(t, err)
		require.Equal(t, start, end)
	})
	t.Run("OutOfBounds", func(t *testing.T) {
		_, err := g.Walk(start, gridgraph.Path{gridgraph.Up})
		require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	})
	t.Run("Blocked", func(t *testing.T) {
		_, err := g.Walk(start, gridgraph.Path{gridgraph.Right, gridgraph.Down})
		require.ErrorIs(t, err, gridgraph.ErrBlocked)
	})
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 7, nil)
	require.NoError(t, err)
	for i := 0; i < g.Rows*g.Cols; i++ {
		require.Equal(t, i, g.Index(g.Coordinate(i)))
	}
}
