// Package wave implements the per-cell possibility state (component C2 of
// the wfc solver): a dense bitset of still-possible pattern ids per grid
// cell, plus the running sums needed to compute weighted Shannon entropy
// in O(1) from stored state.
//
// The dense-array-of-cells storage shape and deep-copy-on-read discipline
// (Snapshot) are adapted from lvlath/gridgraph.GridGraph's
// deep-copy-on-construct immutability stance, applied here to reads of
// live solver state instead of to the constructor.
package wave

import (
	"math"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/wfcrng"
)

const epsilon = 1e-6

// Cell is one grid cell's possibility state.
type Cell struct {
	possible    bitset
	sumWeights  uint64
	sumLogw     float64
	numPossible int
	noise       float64
	decided     bool
	// version is bumped every time the cell's possibility set shrinks, so
	// the entropy priority queue (package entropy) can discard stale
	// entries without back-pointers into the queue.
	version uint32
}

// NumPossible returns the count of patterns still possible in this cell.
func (c *Cell) NumPossible() int { return c.numPossible }

// Decided reports whether the cell has collapsed to exactly one pattern
// (true) or reached a contradiction with zero patterns possible (also
// true: both terminal states set Decided).
func (c *Cell) Decided() bool { return c.decided }

// Version returns the cell's current mutation version, used by the
// entropy priority queue to invalidate stale heap entries.
func (c *Cell) Version() uint32 { return c.version }

// SumWeights returns the running sum of weights over still-possible
// patterns, the denominator of the inverse-CDF weighted sample used by
// package observe.
func (c *Cell) SumWeights() uint64 { return c.sumWeights }

// Possible reports whether pattern p is still possible in this cell.
func (c *Cell) Possible(p catalogue.PatternID) bool { return c.possible.test(int(p)) }

// ForEachPossible calls fn for every pattern still possible in this cell,
// in ascending pattern-id order.
func (c *Cell) ForEachPossible(fn func(p catalogue.PatternID)) {
	c.possible.forEach(func(p int) { fn(catalogue.PatternID(p)) })
}

// ChosenPattern returns the remaining pattern and true iff NumPossible() == 1.
func (c *Cell) ChosenPattern() (catalogue.PatternID, bool) {
	if c.numPossible != 1 {
		return 0, false
	}
	var found catalogue.PatternID
	c.possible.forEach(func(p int) { found = catalogue.PatternID(p) })
	return found, true
}

// EntropyKey returns the weighted Shannon entropy key used by the
// priority queue, recomputed from stored sums every call: it must never
// be tracked incrementally, since accumulated floating-point drift would
// break the priority ordering. Only meaningful when NumPossible() >= 2;
// callers must check that themselves (a decided cell has no entropy).
func (c *Cell) EntropyKey() float64 {
	return math.Log(float64(c.sumWeights)) - c.sumLogw/float64(c.sumWeights) + c.noise
}

// Wave is the grid's full possibility state: one Cell per coordinate.
type Wave struct {
	cat   *catalogue.Table
	cells []Cell
}

// New allocates a Wave of n cells, every pattern possible everywhere,
// drawing one noise value per cell from rng to break entropy ties
// deterministically. Every cell's bitset is allocated here, once; the
// wave's cell storage is not reallocated as the run progresses, but
// Force allocates the slice of removals it returns on every call.
func New(cat *catalogue.Table, n int, rng wfcrng.Source) *Wave {
	w := &Wave{cat: cat, cells: make([]Cell, n)}
	sumW, sumLW := initialSums(cat)
	p := cat.NumPatterns()
	for i := range w.cells {
		c := &w.cells[i]
		c.possible = newBitset(p)
		c.possible.setAll()
		c.sumWeights = sumW
		c.sumLogw = sumLW
		c.numPossible = p
		c.decided = p == 1
		c.noise = rng.Float64() * epsilon
	}
	return w
}

// initialSums computes sum_weights and sum_logw in ascending pattern-id
// order, the single fixed reduction order required for cross-platform
// determinism.
func initialSums(cat *catalogue.Table) (uint64, float64) {
	var sumW uint64
	var sumLW float64
	for p := 0; p < cat.NumPatterns(); p++ {
		sumW += uint64(cat.Weight(catalogue.PatternID(p)))
		sumLW += cat.LogWeight(catalogue.PatternID(p))
	}
	return sumW, sumLW
}

// NumCells returns the number of cells in the wave.
func (w *Wave) NumCells() int { return len(w.cells) }

// Cell returns a pointer to the cell at the given flat index. The pointer
// is valid for the lifetime of the Wave; callers other than the solver
// core should prefer Snapshot for a stable read-only view.
func (w *Wave) Cell(idx int) *Cell { return &w.cells[idx] }

// Remove clears pattern p from the cell at idx, updating the running sums
// and num_possible, and classifies the result. It is a no-op (returns Ok
// with no state change) if p was already impossible in that cell --
// propagate relies on this idempotence.
//
// Complexity: O(1).
func (w *Wave) Remove(idx int, p catalogue.PatternID) RemoveResult {
	c := &w.cells[idx]
	if !c.possible.test(int(p)) {
		return RemoveResult{Outcome: Ok}
	}

	c.possible.clear(int(p))
	c.sumWeights -= uint64(w.cat.Weight(p))
	c.sumLogw -= w.cat.LogWeight(p)
	c.numPossible--
	c.version++

	switch c.numPossible {
	case 0:
		c.decided = true
		return RemoveResult{Outcome: Contradiction}
	case 1:
		c.decided = true
		chosen, _ := c.ChosenPattern()
		return RemoveResult{Outcome: Decided, Pattern: chosen}
	default:
		return RemoveResult{Outcome: Ok}
	}
}

// Force collapses the cell at idx to exactly pattern p, returning one
// RemoveResult per other pattern that was possible and is now removed.
// Equivalent to calling Remove for every q != p.
func (w *Wave) Force(idx int, p catalogue.PatternID) []RemovedPattern {
	c := &w.cells[idx]
	removed := make([]RemovedPattern, 0, c.numPossible-1)
	var toRemove []catalogue.PatternID
	c.possible.forEach(func(q int) {
		if catalogue.PatternID(q) != p {
			toRemove = append(toRemove, catalogue.PatternID(q))
		}
	})
	for _, q := range toRemove {
		res := w.Remove(idx, q)
		removed = append(removed, RemovedPattern{Pattern: q, Result: res})
	}
	return removed
}

// RemovedPattern pairs a removed pattern id with the RemoveResult produced
// by removing it, so callers (the propagator, global constraints) can
// enqueue follow-up work and detect contradictions.
type RemovedPattern struct {
	Pattern catalogue.PatternID
	Result  RemoveResult
}

// CellView is a read-only snapshot of one cell, safe to hold onto after
// the Wave has moved on (e.g. for progress rendering). See Wave.Snapshot.
type CellView struct {
	NumPossible int
	Decided     bool
	Chosen      catalogue.PatternID
	HasChosen   bool
}

// Snapshot returns a deep copy of the wave's cell states as CellViews,
// safe for external iteration without exposing live solver state.
// Grounded in lvlath/gridgraph.GridGraph's deep-copy-on-construct
// immutability stance, applied here to deep-copy-on-read.
func (w *Wave) Snapshot() []CellView {
	out := make([]CellView, len(w.cells))
	for i := range w.cells {
		c := &w.cells[i]
		chosen, ok := c.ChosenPattern()
		out[i] = CellView{
			NumPossible: c.numPossible,
			Decided:     c.decided,
			Chosen:      chosen,
			HasChosen:   ok,
		}
	}
	return out
}
