package pathfind

import "github.com/katalvlaran/gridsearch/gridgraph"

// astar orders the frontier by (f, g) with f = g + h and h the Manhattan
// distance to the goal. gScores holds the best known cost per cell; stale
// pops are skipped and a neighbor is relaxed only on a strictly better g.
// Manhattan distance is admissible and consistent on a 4-connected unit
// grid, so the first time the goal is popped its path is shortest.
func (r *runner) astar() (gridgraph.Path, bool, error) {
	h := func(c gridgraph.Cell) int { return gridgraph.Manhattan(c, r.goal) }

	gScores := map[gridgraph.Cell]int{r.start: 0}
	pq := &frontier{}
	pq.add(&entry{cell: r.start, keys: [2]int{h(r.start), 0}})

	for pq.Len() > 0 {
		e := pq.take()
		if e.cell == r.goal {
			return r.pathTo(r.goal), true, nil
		}
		if e.g > gScores[e.cell] {
			continue
		}
		if err := r.expand(e.cell, e.g); err != nil {
			return nil, false, err
		}

		for _, st := range r.grid.Neighbors(e.cell) {
			g := gScores[e.cell] + 1
			if best, seen := gScores[st.To]; seen && g >= best {
				continue
			}
			gScores[st.To] = g
			r.cameFrom[st.To] = st.Move
			pq.add(&entry{cell: st.To, g: g, keys: [2]int{g + h(st.To), g}})
		}
	}

	return nil, false, nil
}
