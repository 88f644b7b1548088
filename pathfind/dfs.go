package pathfind

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// dfs explores with an explicit LIFO stack. Unvisited neighbors are
// stable-sorted by descending Manhattan distance to the goal before being
// pushed, so the nearest one is popped first. Cells are marked visited on push.
func (r *runner) dfs() (gridgraph.Path, bool, error) {
	visited := map[gridgraph.Cell]bool{r.start: true}
	stack := []queueItem{{cell: r.start}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if item.cell == r.goal {
			return r.pathTo(r.goal), true, nil
		}
		if err := r.expand(item.cell, item.depth); err != nil {
			return nil, false, err
		}

		next := r.unvisitedNeighbors(item.cell, visited)
		slices.SortStableFunc(next, func(a, b gridgraph.Step) int {
			return cmp.Compare(gridgraph.Manhattan(b.To, r.goal), gridgraph.Manhattan(a.To, r.goal))
		})
		for _, st := range next {
			visited[st.To] = true
			r.cameFrom[st.To] = st.Move
			stack = append(stack, queueItem{cell: st.To, depth: item.depth + 1})
		}
	}

	return nil, false, nil
}

// unvisitedNeighbors returns the passable neighbors of c not in visited,
// in gridgraph.Directions order.
func (r *runner) unvisitedNeighbors(c gridgraph.Cell, visited map[gridgraph.Cell]bool) []gridgraph.Step {
	steps := r.grid.Neighbors(c)
	return slices.DeleteFunc(steps, func(st gridgraph.Step) bool { return visited[st.To] })
}
