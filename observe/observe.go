// Package observe implements the observation step (C6) of the wfc solver:
// picking the lowest-entropy live cell and collapsing it to one pattern
// sampled by weight.
//
// The pop-until-live-entry loop is the same shape as lvlath/dijkstra's
// main loop skipping already-visited heap entries; the weighted sampling
// itself is the inverse-CDF technique used by lvlath/tsp's deterministic
// RNG helpers, applied here to a running sum_weights instead of a fixed
// population.
package observe

import (
	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/entropy"
	"github.com/katalvlaran/wfc/propagate"
	"github.com/katalvlaran/wfc/wave"
	"github.com/katalvlaran/wfc/wfcrng"
)

// Outcome classifies the result of one observation.
type Outcome uint8

const (
	// Complete means the priority queue held no live undecided cell: the
	// wave is fully collapsed.
	Complete Outcome = iota
	// Progress means a cell was collapsed to one pattern; propagation
	// over the resulting removals has not yet run (that is C7's job).
	Progress
)

// Result is the outcome of one Observer.Observe call.
type Result struct {
	Outcome Outcome
	Cell    int
	Pattern catalogue.PatternID
}

// Observer selects the lowest-entropy live cell and collapses it.
type Observer struct {
	wv   *wave.Wave
	cat  *catalogue.Table
	q    *entropy.Queue
	prop *propagate.Propagator
}

// New builds an Observer over the given wave, catalogue, entropy queue,
// and propagator (used only to enqueue the removals Force produces;
// Observe itself never runs propagation -- that is the run controller's
// job).
func New(wv *wave.Wave, cat *catalogue.Table, q *entropy.Queue, prop *propagate.Propagator) *Observer {
	return &Observer{wv: wv, cat: cat, q: q, prop: prop}
}

// Observe pops cells from the priority queue, skipping stale or already-
// decided entries, until a live undecided cell is found or the queue
// empties. On finding one, it samples a pattern weighted by the cell's
// remaining weight mass via inverse-CDF and collapses the cell to it,
// enqueuing one Removal per other pattern that was possible.
//
// Complexity: O(log n) amortized per discarded stale entry, plus O(k) for
// the chosen cell's possible-pattern count k.
func (o *Observer) Observe(rng wfcrng.Source) Result {
	for {
		cellIdx, _, ok := o.q.Pop()
		if !ok {
			return Result{Outcome: Complete}
		}
		cell := o.wv.Cell(cellIdx)
		if cell.Decided() {
			continue // stale or already-decided entry: skip it
		}

		chosen := o.sampleWeighted(cell, rng)
		removed := o.wv.Force(cellIdx, chosen)
		for _, rp := range removed {
			o.prop.Enqueue(propagate.Removal{CellIdx: cellIdx, Pattern: rp.Pattern})
		}
		return Result{Outcome: Progress, Cell: cellIdx, Pattern: chosen}
	}
}

// sampleWeighted draws one pattern from cell's possible set via
// inverse-CDF: a uniform draw in [0, sum_weights), walked against each
// possible pattern's weight in ascending pattern-id order -- the same
// fixed iteration order used everywhere else in this solver for
// cross-platform determinism.
func (o *Observer) sampleWeighted(cell *wave.Cell, rng wfcrng.Source) catalogue.PatternID {
	sum := cell.SumWeights()
	draw := uint64(rng.Float64() * float64(sum))
	if sum > 0 && draw >= sum {
		draw = sum - 1
	}

	var chosen catalogue.PatternID
	var found bool
	var acc uint64
	cell.ForEachPossible(func(p catalogue.PatternID) {
		if found {
			return
		}
		acc += uint64(o.cat.Weight(p))
		if draw < acc {
			chosen = p
			found = true
		}
	})
	return chosen
}
