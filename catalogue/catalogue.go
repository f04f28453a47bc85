// Package catalogue defines the immutable pattern catalogue (component C1
// of the wfc solver): a dense table mapping pattern id -> weight, log-
// weight, and per-direction compatibility sets.
//
// Construction is a fail-fast precondition check, in the spirit of
// lvlath/core's sentinel-error, validate-at-construction style: a zero
// weight, an asymmetric compatibility relation, or a per-direction
// compatibility set too large for the configured counter width are all
// programmer errors surfaced immediately by New, not at solve time.
package catalogue

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wfc/direction"
)

// PatternID is a dense non-negative integer identifying a pattern.
type PatternID int

// MaxSupportCount is the largest number of compatible neighbour patterns
// a single (pattern, direction) compatibility set may contain. It bounds
// the width of the support counters in package propagate (an 8-bit count
// per lvlath/gridgraph-style "keep counters small and dense" guidance);
// exceeding it is a construction-time CatalogueTooLarge error, never a
// runtime one.
const MaxSupportCount = 255

// Table is the immutable pattern catalogue. It is safe to share read-only
// across goroutines (e.g. concurrent collapse_retrying attempts): nothing
// in Table is ever mutated after New returns.
type Table struct {
	weight []uint32
	logw   []float64
	// compat[p][d] holds the sorted, de-duplicated ids of patterns
	// compatible with p in direction d.
	compat [][4][]PatternID
}

// Spec is the caller-supplied description of one pattern: its frequency
// weight and, for each direction, the ids of patterns allowed in that
// neighbour. Spec.Compat must be supplied on both sides of every pair: New
// does not derive the symmetric closure, it only checks it, and returns
// ErrAsymmetricCompat when q ∈ Compat[d] of p but p ∉ Compat[opposite(d)]
// of q.
type Spec struct {
	Weight uint32
	Compat [4][]PatternID
}

// New builds a Table from per-pattern specs. It rejects zero-weight
// patterns, verifies the symmetry invariant (q ∈ compat[p][d] iff
// p ∈ compat[q][opposite(d)]), and rejects any (pattern, direction)
// compatibility set exceeding MaxSupportCount.
//
// Complexity: O(P * D * avg-compat-size).
func New(specs []Spec) (*Table, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("catalogue: %w", ErrEmptyCatalogue)
	}

	p := len(specs)
	t := &Table{
		weight: make([]uint32, p),
		logw:   make([]float64, p),
		compat: make([][4][]PatternID, p),
	}

	for id, s := range specs {
		if s.Weight == 0 {
			return nil, fmt.Errorf("catalogue: pattern %d: %w", id, ErrZeroWeight)
		}
		t.weight[id] = s.Weight
		t.logw[id] = float64(s.Weight) * math.Log(float64(s.Weight))

		for _, d := range direction.All {
			qs := dedupSorted(s.Compat[d])
			if len(qs) > MaxSupportCount {
				return nil, fmt.Errorf("catalogue: pattern %d direction %v: %w", id, d, ErrCatalogueTooLarge)
			}
			for _, q := range qs {
				if int(q) < 0 || int(q) >= p {
					return nil, fmt.Errorf("catalogue: pattern %d direction %v: %w (got %d, have %d patterns)", id, d, ErrPatternOutOfRange, q, p)
				}
			}
			t.compat[id][d] = qs
		}
	}

	if err := t.checkSymmetric(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkSymmetric verifies that q ∈ compat[p][d] iff p ∈ compat[q][opposite(d)]
// for every pattern p, direction d, and candidate q. Complexity: O(P * D *
// avg-compat-size) using the sorted-slice membership test.
func (t *Table) checkSymmetric() error {
	for p := 0; p < t.NumPatterns(); p++ {
		for _, d := range direction.All {
			od := d.Opposite()
			for _, q := range t.compat[p][d] {
				if !containsSorted(t.compat[q][od], PatternID(p)) {
					return fmt.Errorf("catalogue: %w: pattern %d allows %d in direction %v but %d does not allow %d in direction %v",
						ErrAsymmetricCompat, p, q, d, q, p, od)
				}
			}
		}
	}
	return nil
}

// NumPatterns returns P, the number of distinct patterns.
func (t *Table) NumPatterns() int { return len(t.weight) }

// Weight returns weight[p], the pattern's frequency count in the sample.
func (t *Table) Weight(p PatternID) uint32 { return t.weight[p] }

// LogWeight returns logw[p] = weight[p] * ln(weight[p]), precomputed at
// construction so entropy computation never calls math.Log on the hot path.
func (t *Table) LogWeight(p PatternID) float64 { return t.logw[p] }

// Compat returns the (read-only) set of pattern ids compatible with p in
// direction d. Callers must not mutate the returned slice.
func (t *Table) Compat(p PatternID, d direction.Direction) []PatternID {
	return t.compat[p][d]
}

func dedupSorted(ids []PatternID) []PatternID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[PatternID]struct{}, len(ids))
	out := make([]PatternID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	// Simple insertion sort: compat sets are small (bounded by MaxSupportCount).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func containsSorted(ids []PatternID, target PatternID) bool {
	lo, hi := 0, len(ids)
	for lo < hi {
		mid := (lo + hi) / 2
		if ids[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(ids) && ids[lo] == target
}
