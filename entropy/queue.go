// Package entropy implements the priority structure (C4) of the wfc
// solver: a min-heap over cells keyed by weighted Shannon entropy, with
// lazy invalidation via a per-cell version tag.
//
// Adapted from lvlath/dijkstra's nodePQ: the same container/heap-backed,
// "push a new entry instead of decreasing a key in place, and let stale
// entries be filtered out on Pop" lazy-decrease-key idiom is reused here,
// replacing dijkstra's visited-vertex bitmap with a per-cell monotonic
// version counter (pattern removals only ever lower a cell's entropy, so
// a newer push always supersedes an older one for the same cell).
package entropy

import "container/heap"

// Queue is a min-heap of (key, cell, version) entries. Multiple live
// entries may exist for the same cell; Pop always returns the newest
// (highest-version) one and silently discards older, now-stale entries.
type Queue struct {
	h      innerHeap
	latest []uint32 // latest[cellIdx] = version of the most recent push for that cell
}

// NewQueue allocates a Queue sized for numCells. Push/Pop never allocate
// beyond the heap's internal slice growth.
func NewQueue(numCells int) *Queue {
	q := &Queue{latest: make([]uint32, numCells)}
	heap.Init(&q.h)
	return q
}

// Push adds an entry for cellIdx with the given entropy key and version.
// Only entries whose version matches latest[cellIdx] at Pop time survive;
// pushing a new, higher version implicitly invalidates any entry already
// in the heap for that cell.
//
// Complexity: O(log n).
func (q *Queue) Push(cellIdx int, key float64, version uint32) {
	q.latest[cellIdx] = version
	heap.Push(&q.h, item{key: key, cellIdx: cellIdx, version: version})
}

// NotifyChanged implements propagate.EntropyNotifier: it is the single
// channel the propagator uses to tell the queue "this cell's entropy
// changed", without either package holding a reference to the other's
// concrete type.
func (q *Queue) NotifyChanged(cellIdx int, key float64, version uint32) {
	q.Push(cellIdx, key, version)
}

// Pop removes and returns the cell with the lowest live entropy key,
// discarding any stale entries (entries whose version no longer matches
// the cell's latest known version) encountered along the way. Returns
// ok=false once no live entry remains -- the "no undecided cell"
// success case.
//
// Complexity: amortized O(log n) per live entry returned, plus O(log n)
// per stale entry discarded.
func (q *Queue) Pop() (cellIdx int, key float64, ok bool) {
	for q.h.Len() > 0 {
		it := heap.Pop(&q.h).(item)
		if it.version != q.latest[it.cellIdx] {
			continue // stale: a newer push already superseded this entry
		}
		return it.cellIdx, it.key, true
	}
	return 0, 0, false
}

// Len reports the number of entries currently in the heap, live or stale.
// Exposed for tests asserting the heap shrinks as stale entries are
// discarded.
func (q *Queue) Len() int { return q.h.Len() }

// item is one heap entry.
type item struct {
	key     float64
	cellIdx int
	version uint32
}

// innerHeap is a container/heap.Interface over item, ordered by
// ascending key -- the same shape as lvlath/dijkstra's nodePQ.
type innerHeap []item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
