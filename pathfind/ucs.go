package pathfind

import "github.com/katalvlaran/gridsearch/gridgraph"

// ucs is Dijkstra's algorithm with unit edge costs. costs records the best
// known cost per cell; a popped entry whose cost exceeds it is stale and
// skipped. Neighbors are relaxed only on a strictly smaller cost.
func (r *runner) ucs() (gridgraph.Path, bool, error) {
	costs := map[gridgraph.Cell]int{r.start: 0}
	pq := &frontier{}
	pq.add(&entry{cell: r.start})

	for pq.Len() > 0 {
		e := pq.take()
		if e.cell == r.goal {
			return r.pathTo(r.goal), true, nil
		}
		if e.g > costs[e.cell] {
			continue
		}
		if err := r.expand(e.cell, e.g); err != nil {
			return nil, false, err
		}

		for _, st := range r.grid.Neighbors(e.cell) {
			cost := e.g + 1
			if best, seen := costs[st.To]; seen && cost >= best {
				continue
			}
			costs[st.To] = cost
			r.cameFrom[st.To] = st.Move
			pq.add(&entry{cell: st.To, g: cost, keys: [2]int{cost, 0}})
		}
	}

	return nil, false, nil
}
