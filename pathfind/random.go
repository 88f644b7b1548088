package pathfind

import (
	"math/rand/v2"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// randomWalk simulates a walker that picks one of the four directions
// uniformly at random each iteration. Rejected moves still use up an
// iteration. No frontier, no visited set.
func (r *runner) randomWalk() (gridgraph.Path, bool, error) {
	intn := rand.IntN
	if r.opts.Rand != nil {
		intn = r.opts.Rand.IntN
	}

	cur := r.start
	var path gridgraph.Path
	for i := 0; i < r.opts.MaxWalkSteps; i++ {
		if err := r.expand(cur, len(path)); err != nil {
			return nil, false, err
		}
		m := gridgraph.Directions[intn(len(gridgraph.Directions))]
		if next := cur.Add(m); r.grid.Passable(next) {
			path = append(path, m)
			cur = next
		}
		if cur == r.goal {
			return path, true, nil
		}
	}

	return nil, false, nil
}
