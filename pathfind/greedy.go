package pathfind

import "github.com/katalvlaran/gridsearch/gridgraph"

// greedy always expands the frontier cell with the smallest Manhattan
// distance to the goal, ignoring the cost so far. Cells are marked visited
// on push, so a cell is never re-expanded through a cheaper route.
func (r *runner) greedy() (gridgraph.Path, bool, error) {
	visited := map[gridgraph.Cell]bool{r.start: true}
	pq := &frontier{}
	pq.add(&entry{cell: r.start, keys: [2]int{gridgraph.Manhattan(r.start, r.goal), 0}})

	for pq.Len() > 0 {
		e := pq.take()
		if e.cell == r.goal {
			return r.pathTo(r.goal), true, nil
		}
		if err := r.expand(e.cell, e.g); err != nil {
			return nil, false, err
		}

		for _, st := range r.grid.Neighbors(e.cell) {
			if visited[st.To] {
				continue
			}
			visited[st.To] = true
			r.cameFrom[st.To] = st.Move
			pq.add(&entry{cell: st.To, g: e.g + 1, keys: [2]int{gridgraph.Manhattan(st.To, r.goal), 0}})
		}
	}

	return nil, false, nil
}
