package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// entry is one frontier record. keys are compared lexicographically
// (UCS: cost; greedy: h; A*: f then g), then the cell, then insertion order.
type entry struct {
	cell gridgraph.Cell
	g    int
	keys [2]int
	seq  int
}

// frontier is a min-heap of *entry implementing heap.Interface.
// Stale entries are left in place and skipped on pop (lazy decrease-key).
type frontier struct {
	items []*entry
	next  int
}

func (f frontier) Len() int { return len(f.items) }

func (f frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	switch {
	case a.keys[0] != b.keys[0]:
		return a.keys[0] < b.keys[0]
	case a.keys[1] != b.keys[1]:
		return a.keys[1] < b.keys[1]
	case a.cell.Row != b.cell.Row:
		return a.cell.Row < b.cell.Row
	case a.cell.Col != b.cell.Col:
		return a.cell.Col < b.cell.Col
	}
	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push appends x; use add to keep insertion order stamped.
func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*entry))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return e
}

// add stamps e with the next sequence number and pushes it.
func (f *frontier) add(e *entry) {
	e.seq = f.next
	f.next++
	heap.Push(f, e)
}

// take pops the minimum entry.
func (f *frontier) take() *entry {
	return heap.Pop(f).(*entry)
}
