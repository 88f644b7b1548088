package pathfind

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// ids repeats a depth-limited DFS with bounds 0, 1, ..., MaxDepth-1
// (rows×cols by default) and returns the first path found, which is a
// shortest one.
func (r *runner) ids() (gridgraph.Path, bool, error) {
	maxDepth := r.opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = r.grid.Rows * r.grid.Cols
	}

	for limit := 0; limit < maxDepth; limit++ {
		onPath := map[gridgraph.Cell]bool{r.start: true}
		path, found, err := r.depthLimited(r.start, limit, nil, onPath)
		if err != nil || found {
			return path, found, err
		}
	}

	return nil, false, nil
}

// depthLimited searches below c for at most limit more moves. onPath holds
// the cells of the current recursion path only: c is added on entry and
// removed on every exit, so other branches may revisit it.
// Neighbors are stable-sorted by ascending Manhattan distance to the goal.
func (r *runner) depthLimited(c gridgraph.Cell, limit int, path gridgraph.Path, onPath map[gridgraph.Cell]bool) (gridgraph.Path, bool, error) {
	if c == r.goal {
		return slices.Clone(path), true, nil
	}
	if limit == 0 {
		return nil, false, nil
	}
	if err := r.expand(c, len(path)); err != nil {
		return nil, false, err
	}

	onPath[c] = true
	defer delete(onPath, c)

	next := r.unvisitedNeighbors(c, onPath)
	slices.SortStableFunc(next, func(a, b gridgraph.Step) int {
		return cmp.Compare(gridgraph.Manhattan(a.To, r.goal), gridgraph.Manhattan(b.To, r.goal))
	})
	for _, st := range next {
		found, ok, err := r.depthLimited(st.To, limit-1, append(path, st.Move), onPath)
		if err != nil || ok {
			return found, ok, err
		}
	}

	return nil, false, nil
}
