package gridgraph

// Components finds all 4-connected regions of passable cells.
// Regions are discovered in row-major order of their first cell, and each
// region lists its cells in BFS order from that first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g Grid) Components() [][]Cell {
	seen := make([]bool, g.Rows*g.Cols)
	var comps [][]Cell

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			c0 := Cell{Row: r, Col: c}
			if g.Obstacles.Has(c0) || seen[g.Index(c0)] {
				continue
			}
			// BFS to collect component
			seen[g.Index(c0)] = true
			queue := []Cell{c0}
			for qi := 0; qi < len(queue); qi++ {
				for _, st := range g.Neighbors(queue[qi]) {
					if vi := g.Index(st.To); !seen[vi] {
						seen[vi] = true
						queue = append(queue, st.To)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// 4-connected region. A passable cell is connected to itself.
//
// Time:   O(R·C) worst case; stops as soon as b is reached.
// Memory: O(R·C).
func (g Grid) Connected(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	seen := make([]bool, g.Rows*g.Cols)
	seen[g.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, st := range g.Neighbors(u) {
			if vi := g.Index(st.To); !seen[vi] {
				seen[vi] = true
				queue = append(queue, st.To)
			}
		}
	}

	return false
}
