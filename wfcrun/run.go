// Package wfcrun implements the run controller (C7) of the wfc solver:
// it drives observation and propagation to completion, handles
// contradictions and restarts, and exposes global constraints and
// iteration access for external callers (e.g. a renderer painting
// progress frames).
package wfcrun

import (
	"fmt"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/entropy"
	"github.com/katalvlaran/wfc/observe"
	"github.com/katalvlaran/wfc/propagate"
	"github.com/katalvlaran/wfc/wave"
	"github.com/katalvlaran/wfc/wfcrng"
)

// Run owns one solve attempt's full mutable state: the wave, the support
// counters, the entropy queue, the propagator, and the observer. All of
// these are allocated once in New. Each observation and each Force call
// still allocates the slice of removals returned by wave.Wave.Force, and
// the entropy queue's heap and the propagator's worklist grow as needed.
type Run struct {
	cat  *catalogue.Table
	size direction.Size
	wv   *wave.Wave
	q    *entropy.Queue
	cnt  *propagate.Counters
	prop *propagate.Propagator
	obs  *observe.Observer
	cfg  config

	state             State
	contradictionCell int
}

// New builds a fresh Run over cat and size, seeding the entropy queue
// with every cell's initial entropy key: the queue must hold an entry
// for every undecided cell whose entropy has changed since last
// observed, and at construction that is every cell with more than one
// possible pattern.
func New(cat *catalogue.Table, size direction.Size, rng wfcrng.Source, opts ...Option) *Run {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	wv := wave.New(cat, size.NumCells(), rng)
	q := entropy.NewQueue(size.NumCells())
	cnt := propagate.NewCounters(cat, size)
	prop := propagate.New(wv, cat, size, cnt, q)
	obs := observe.New(wv, cat, q, prop)

	r := &Run{cat: cat, size: size, wv: wv, q: q, cnt: cnt, prop: prop, obs: obs, cfg: cfg}
	for i := 0; i < wv.NumCells(); i++ {
		c := wv.Cell(i)
		if c.NumPossible() >= 2 {
			q.Push(i, c.EntropyKey(), c.Version())
		}
	}
	return r
}

// State returns the run's current lifecycle state.
func (r *Run) State() State { return r.state }

// Step performs one observation followed by full propagation to
// quiescence. Between the observation and the end of propagation the
// wave is in a transient state; callers must not read it until Step
// returns.
func (r *Run) Step(rng wfcrng.Source) StepResult {
	switch r.state {
	case Complete:
		return StepComplete
	case Contradiction:
		return StepContradiction
	}

	res := r.obs.Observe(rng)
	if res.Outcome == observe.Complete {
		r.state = Complete
		return StepComplete
	}

	ok, cellIdx, _ := r.prop.Run()
	if !ok {
		r.state = Contradiction
		r.contradictionCell = cellIdx
		r.cfg.logf("wfcrun: contradiction at cell %d after observing cell %d", cellIdx, res.Cell)
		return StepContradiction
	}
	return Incomplete
}

// StepAll loops Step until a terminal state is reached or budget steps
// have run, whichever comes first. budget <= 0 means unlimited.
func (r *Run) StepAll(rng wfcrng.Source, budget int) RunResult {
	steps := 0
	for budget <= 0 || steps < budget {
		switch r.Step(rng) {
		case StepComplete:
			return RunComplete
		case StepContradiction:
			return RunContradiction
		}
		steps++
	}
	return RunBudgetExhausted
}

// Forbid removes every pattern in patterns from the cell at (x, y),
// propagating to quiescence before returning. Returns an error if the
// coordinates or any pattern id are out of range, or if the removal (or
// its propagation) reaches a Contradiction -- both reported synchronously.
func (r *Run) Forbid(x, y int, patterns []catalogue.PatternID) error {
	idx, err := r.cellIndex(x, y)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		if err := r.validPattern(p); err != nil {
			return err
		}
		res := r.wv.Remove(idx, p)
		switch res.Outcome {
		case wave.Contradiction:
			r.state = Contradiction
			r.contradictionCell = idx
			return fmt.Errorf("wfcrun: Forbid at (%d,%d): %w", x, y, ErrContradictionReached)
		case wave.Ok, wave.Decided:
			r.prop.Enqueue(propagate.Removal{CellIdx: idx, Pattern: p})
		}
	}
	return r.drainConstraintPropagation(x, y, "Forbid")
}

// Force collapses the cell at (x, y) to exactly pattern, propagating to
// quiescence before returning.
func (r *Run) Force(x, y int, pattern catalogue.PatternID) error {
	idx, err := r.cellIndex(x, y)
	if err != nil {
		return err
	}
	if err := r.validPattern(pattern); err != nil {
		return err
	}
	removed := r.wv.Force(idx, pattern)
	for _, rp := range removed {
		r.prop.Enqueue(propagate.Removal{CellIdx: idx, Pattern: rp.Pattern})
	}
	return r.drainConstraintPropagation(x, y, "Force")
}

func (r *Run) drainConstraintPropagation(x, y int, who string) error {
	ok, cellIdx, _ := r.prop.Run()
	if !ok {
		r.state = Contradiction
		r.contradictionCell = cellIdx
		return fmt.Errorf("wfcrun: %s at (%d,%d): %w", who, x, y, ErrContradictionReached)
	}
	return nil
}

func (r *Run) cellIndex(x, y int) (int, error) {
	if x < 0 || x >= r.size.Width || y < 0 || y >= r.size.Height {
		return 0, fmt.Errorf("wfcrun: (%d,%d): %w", x, y, ErrCellOutOfRange)
	}
	return r.size.Index(x, y), nil
}

func (r *Run) validPattern(p catalogue.PatternID) error {
	if int(p) < 0 || int(p) >= r.cat.NumPatterns() {
		return fmt.Errorf("wfcrun: pattern %d: %w", p, ErrPatternOutOfRange)
	}
	return nil
}

// CellAt returns a read-only view of the cell at (x, y): its
// num_possible, chosen pattern (if decided), and an iterator over its
// still-possible ids. This is how external renderers paint progress
// frames.
func (r *Run) CellAt(x, y int) (view CellView, err error) {
	idx, err := r.cellIndex(x, y)
	if err != nil {
		return CellView{}, err
	}
	return r.cellView(idx), nil
}

// CellView is a read-only view of one cell's state.
type CellView struct {
	NumPossible int
	Chosen      catalogue.PatternID
	HasChosen   bool
	cell        *wave.Cell
}

// ForEachPossible calls fn for every pattern still possible in this cell,
// in ascending pattern-id order.
func (v CellView) ForEachPossible(fn func(p catalogue.PatternID)) {
	v.cell.ForEachPossible(fn)
}

func (r *Run) cellView(idx int) CellView {
	c := r.wv.Cell(idx)
	chosen, ok := c.ChosenPattern()
	return CellView{NumPossible: c.NumPossible(), Chosen: chosen, HasChosen: ok, cell: c}
}

// Snapshot returns a deep-copied, dependency-free view of every cell,
// safe to retain after the Run has moved on. Adapted from
// lvlath/gridgraph.GridGraph's deep-copy-on-construct immutability
// stance, applied here to deep-copy-on-read (see wave.Wave.Snapshot).
func (r *Run) Snapshot() []wave.CellView {
	return r.wv.Snapshot()
}

// Size returns the grid size this run was built over.
func (r *Run) Size() direction.Size { return r.size }
