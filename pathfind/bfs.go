package pathfind

import "github.com/katalvlaran/gridsearch/gridgraph"

// queueItem pairs a cell with its depth (moves from start).
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// bfs explores cells in non-decreasing depth. A cell is marked visited when
// enqueued, so each cell enters the queue at most once.
func (r *runner) bfs() (gridgraph.Path, bool, error) {
	visited := map[gridgraph.Cell]bool{r.start: true}
	queue := []queueItem{{cell: r.start}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.cell == r.goal {
			return r.pathTo(r.goal), true, nil
		}
		if err := r.expand(item.cell, item.depth); err != nil {
			return nil, false, err
		}

		for _, st := range r.grid.Neighbors(item.cell) {
			if visited[st.To] {
				continue
			}
			visited[st.To] = true
			r.cameFrom[st.To] = st.Move
			queue = append(queue, queueItem{cell: st.To, depth: item.depth + 1})
		}
	}

	return nil, false, nil
}
