package propagate

import (
	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/wave"
)

// Removal is one pending worklist entry: pattern p was just removed from
// the cell at CellIdx, and its effect on neighbours has not yet been
// propagated.
type Removal struct {
	CellIdx int
	Pattern catalogue.PatternID
}

// EntropyNotifier is the narrow capability Propagator needs from the
// entropy priority queue: "a cell's key changed, re-push it". Expressed
// as an interface rather than a direct dependency on package entropy so
// that the wave and the heap never hold back-pointers to each other --
// the heap owns entries, the wave owns cells, and this notifier is the
// only channel between them.
type EntropyNotifier interface {
	NotifyChanged(cellIdx int, key float64, version uint32)
}

// Propagator drains a worklist of pattern removals, decrementing support
// counters in neighbouring cells and cascading further removals until
// quiescence.
type Propagator struct {
	wv       *wave.Wave
	cat      *catalogue.Table
	size     direction.Size
	counters *Counters
	notifier EntropyNotifier

	// worklist is a reusable buffer: Reset truncates it to length 0 but
	// keeps its backing array, so a steady-state run allocates nothing
	// on the hot path.
	worklist []Removal
}

// New builds a Propagator over the given wave, counters, and grid size,
// notifying notifier whenever a cell's entropy key changes.
func New(wv *wave.Wave, cat *catalogue.Table, size direction.Size, counters *Counters, notifier EntropyNotifier) *Propagator {
	return &Propagator{wv: wv, cat: cat, size: size, counters: counters, notifier: notifier}
}

// Enqueue adds a removal to the worklist without running propagation. Used
// by global constraints (wfcrun.Forbid/Force) to queue several removals
// before a single Run call drains them to quiescence.
func (p *Propagator) Enqueue(r Removal) {
	p.worklist = append(p.worklist, r)
}

// Run drains the worklist to quiescence, returning the contradiction
// pattern/cell if one is reached (ok=false) or ok=true if the worklist
// emptied cleanly. The worklist is fully drained (and thus empty) when
// Run returns, regardless of outcome.
//
// Order independence: the final wave state after a propagation round
// does not depend on worklist pop order; Run pops from the front (FIFO)
// purely for cache-friendly locality, not correctness.
//
// Complexity: O(worklist length * compat set size).
func (p *Propagator) Run() (ok bool, contradictionCell int, contradictionPattern catalogue.PatternID) {
	for head := 0; head < len(p.worklist); head++ {
		r := p.worklist[head]

		for _, d := range direction.All {
			nIdx, exists := p.size.NeighbourIndex(r.CellIdx, d)
			if !exists {
				continue
			}
			od := d.Opposite()
			for _, q := range p.cat.Compat(r.Pattern, d) {
				if !p.wv.Cell(nIdx).Possible(q) {
					continue // already impossible: nothing to decrement
				}
				if !p.counters.Decrement(nIdx, q, od) {
					continue
				}
				res := p.wv.Remove(nIdx, q)
				if res.Outcome == wave.Contradiction {
					p.worklist = p.worklist[:0]
					return false, nIdx, q
				}
				p.worklist = append(p.worklist, Removal{CellIdx: nIdx, Pattern: q})

				nCell := p.wv.Cell(nIdx)
				if nCell.NumPossible() >= 2 {
					p.notifier.NotifyChanged(nIdx, nCell.EntropyKey(), nCell.Version())
				}
			}
		}
	}
	p.worklist = p.worklist[:0]
	return true, 0, 0
}

// Reset truncates the worklist to empty, reusing its backing array for
// the next propagation round (e.g. after a restart following a
// Contradiction).
func (p *Propagator) Reset() {
	p.worklist = p.worklist[:0]
}
