// Package pathfind finds move sequences between two cells of a
// gridgraph.Grid using seven interchangeable search strategies.
//
// What
//
//   - Seven plain functions share one signature (type Finder):
//     RandomWalk, BFS, DFS, IDS, UCS, GreedyBestFirst, AStar.
//     Each takes (start, goal, obstacles, rows, cols) and returns a
//     gridgraph.Path. They never fail: "unreachable" and "already at goal"
//     both come back as an empty Path.
//   - Search runs any Algorithm with functional Options and returns a Result
//     whose Found flag tells those two cases apart, plus the number of
//     expanded cells.
//
// Strategies
//
//	Algorithm   Frontier                  Optimal  Stops when
//	---------   ------------------------  -------  -------------------------------
//	random      none (simulation)         no       goal reached or 1000 iterations
//	bfs         FIFO queue                yes      goal dequeued or queue empty
//	dfs         LIFO stack, far-first     no       goal popped or stack empty
//	ids         depth-limited recursion   yes      first depth that reaches goal
//	ucs         min-heap on g             yes      goal popped or heap empty
//	greedy      min-heap on h             no       goal popped or heap empty
//	astar       min-heap on (g+h, g)      yes      goal popped or heap empty
//
// Determinism
//
//	Neighbors are generated in gridgraph.Directions order (up, down, left,
//	right). DFS and IDS re-order them with a stable sort on Manhattan distance
//	to the goal, and heap ties break on (row, col, insertion order), so every
//	strategy except random is fully reproducible.
//
// Complexity (N = rows × cols)
//
//   - BFS, DFS, greedy:  O(N) time and memory (each cell enters the frontier once).
//   - UCS, A*:           O(N log N) time, O(N) memory (lazy decrease-key).
//   - IDS:               exponential in the worst case; each depth restarts
//     the search and only the current path is marked visited.
//   - Random walk:       O(MaxWalkSteps).
//
// Usage
//
//	path := pathfind.AStar(start, goal, obstacles, rows, cols)
//
//	grid, _ := gridgraph.NewGrid(rows, cols, obstacles)
//	res, err := pathfind.Search(pathfind.AlgoIDS, start, goal, grid,
//	    pathfind.WithContext(ctx),
//	    pathfind.WithMaxDepth(40),
//	    pathfind.WithOnExpand(func(c gridgraph.Cell, depth int) error { return nil }),
//	)
//
// Options
//
//   - WithContext(ctx):      cancellation, checked once per expansion.
//   - WithOnExpand(fn):      hook per expanded cell; returning an error aborts.
//   - WithMaxWalkSteps(n):   random-walk iteration cap (default 1000, n > 0).
//   - WithRand(r):           random-walk source (default: math/rand/v2 global).
//   - WithMaxDepth(d):       IDS depth cap (0 = rows×cols, d ≥ 0).
//
// Errors (Search only)
//
//   - ErrUnknownAlgorithm         for an Algorithm outside Algorithms().
//   - gridgraph.ErrBadDimensions  for non-positive rows or cols.
//   - ErrOptionViolation          for invalid option values.
//   - context errors and wrapped OnExpand errors.
package pathfind
