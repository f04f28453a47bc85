// Package propagate implements the compatibility counters (C3) and the
// worklist-driven propagation engine (C5) of the wfc solver.
//
// The worklist/cascade shape is adapted from lvlath/flow's Dinic
// implementation: a queue of pending work is drained breadth-first,
// mutating shared state (here, cell possibility bitsets and support
// counters) until quiescence or a terminal condition (here, a
// Contradiction rather than flow's "sink unreachable").
package propagate

import (
	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
)

// Counters holds support[cell][pattern][direction]: for every still-
// possible (cell, p) and every in-bounds direction d, the number of
// patterns still possible in the neighbour that are compatible with p via
// d. Reaching zero means p is no longer possible in cell.
//
// Storage: a dense cell-major []uint8 array; a cell-major layout with
// 8-bit counters suffices for realistic pattern counts up to 256, and
// catalogue.New already rejects compatibility sets that would overflow
// uint8 (ErrCatalogueTooLarge), so no runtime overflow check is needed
// here.
type Counters struct {
	cat    *catalogue.Table
	size   direction.Size
	stride int // P * 4, the per-cell slot count
	counts []uint8
}

func index(stride, p int, d direction.Direction) int {
	return p*4 + int(d)
}

// NewCounters allocates and initializes support counts for every cell,
// assuming every pattern is possible everywhere at init time, which
// simplifies support[cell][p][d] to |compat[p][d]| for every in-bounds
// direction. Directions with no neighbour (Clipped boundary cells) are
// left at zero and are never read, which is behaviourally equivalent to
// treating an absent direction as infinitely supported.
func NewCounters(cat *catalogue.Table, size direction.Size) *Counters {
	p := cat.NumPatterns()
	stride := p * 4
	c := &Counters{
		cat:    cat,
		size:   size,
		stride: stride,
		counts: make([]uint8, size.NumCells()*stride),
	}

	initial := make([]uint8, stride)
	for pid := 0; pid < p; pid++ {
		for _, d := range direction.All {
			initial[index(stride, pid, d)] = uint8(len(cat.Compat(catalogue.PatternID(pid), d)))
		}
	}

	for cellIdx := 0; cellIdx < size.NumCells(); cellIdx++ {
		x, y := size.Coord(cellIdx)
		base := cellIdx * stride
		for pid := 0; pid < p; pid++ {
			for _, d := range direction.All {
				if _, _, ok := size.Neighbour(x, y, d); !ok {
					continue // absent direction: left at zero, never consulted
				}
				c.counts[base+index(stride, pid, d)] = initial[index(stride, pid, d)]
			}
		}
	}
	return c
}

// Decrement reduces support[cell][p][d] by one and reports whether it
// reached zero. The caller must check possible[cell][p] before calling
// Decrement for an already-impossible pattern (Propagator does this);
// Decrement itself does not re-check, to keep the hot path to a single
// array access.
//
// Complexity: O(1).
func (c *Counters) Decrement(cellIdx int, p catalogue.PatternID, d direction.Direction) bool {
	i := cellIdx*c.stride + index(c.stride, int(p), d)
	c.counts[i]--
	return c.counts[i] == 0
}

// Get returns the current support count for (cell, p, d), primarily for
// tests asserting the support-count invariant against a brute-force
// recount.
func (c *Counters) Get(cellIdx int, p catalogue.PatternID, d direction.Direction) uint8 {
	return c.counts[cellIdx*c.stride+index(c.stride, int(p), d)]
}
