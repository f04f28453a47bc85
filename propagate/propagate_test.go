package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/propagate"
	"github.com/katalvlaran/wfc/wave"
	"github.com/katalvlaran/wfc/wfcrng"
)

// stubNotifier records NotifyChanged calls without driving a real heap,
// so propagate tests stay decoupled from package entropy.
type stubNotifier struct {
	calls int
}

func (s *stubNotifier) NotifyChanged(cellIdx int, key float64, version uint32) {
	s.calls++
}

func chequerboardTable(t *testing.T) *catalogue.Table {
	t.Helper()
	specs := []catalogue.Spec{
		{Weight: 1, Compat: [4][]catalogue.PatternID{{1}, {1}, {1}, {1}}},
		{Weight: 1, Compat: [4][]catalogue.PatternID{{0}, {0}, {0}, {0}}},
	}
	tbl, err := catalogue.New(specs)
	require.NoError(t, err)
	return tbl
}

// TestRun_Chequerboard4x4 checks that forcing one corner on a 4x4 torus
// and propagating to quiescence yields a perfect chequerboard with no
// contradiction.
func TestRun_Chequerboard4x4(t *testing.T) {
	tbl := chequerboardTable(t)
	size := direction.Size{Width: 4, Height: 4, Wrap: direction.Torus}
	wv := wave.New(tbl, size.NumCells(), wfcrng.New(1))
	counters := propagate.NewCounters(tbl, size)
	notifier := &stubNotifier{}
	prop := propagate.New(wv, tbl, size, counters, notifier)

	removed := wv.Force(0, 0)
	for _, rp := range removed {
		prop.Enqueue(propagate.Removal{CellIdx: 0, Pattern: rp.Pattern})
	}

	ok, _, _ := prop.Run()
	require.True(t, ok, "Run() reported a contradiction on an even torus chequerboard")

	for idx := 0; idx < size.NumCells(); idx++ {
		x, y := size.Coord(idx)
		chosen, has := wv.Cell(idx).ChosenPattern()
		require.Truef(t, has, "cell (%d,%d) not decided after propagation", x, y)
		want := catalogue.PatternID((x + y) % 2)
		require.Equalf(t, want, chosen, "cell (%d,%d) parity", x, y)
	}
	require.Greater(t, notifier.calls, 0, "expected at least one NotifyChanged call during propagation")
}

// TestRun_OddCycleContradiction checks that the same two-colour
// catalogue on a 3x3 torus has an odd cycle and must contradict.
func TestRun_OddCycleContradiction(t *testing.T) {
	tbl := chequerboardTable(t)
	size := direction.Size{Width: 3, Height: 3, Wrap: direction.Torus}
	wv := wave.New(tbl, size.NumCells(), wfcrng.New(1))
	counters := propagate.NewCounters(tbl, size)
	prop := propagate.New(wv, tbl, size, counters, &stubNotifier{})

	removed := wv.Force(0, 0)
	for _, rp := range removed {
		prop.Enqueue(propagate.Removal{CellIdx: 0, Pattern: rp.Pattern})
	}

	ok, _, _ := prop.Run()
	require.False(t, ok, "Run() should contradict on a 3x3 torus odd cycle")
}

// TestRun_SupportInvariant checks the invariant that for every possible
// (cell, p) and in-bounds direction d, support[cell][p][d] equals the
// count of q in compat[p][d] still possible in the neighbour.
func TestRun_SupportInvariant(t *testing.T) {
	tbl := chequerboardTable(t)
	size := direction.Size{Width: 4, Height: 4, Wrap: direction.Torus}
	wv := wave.New(tbl, size.NumCells(), wfcrng.New(5))
	counters := propagate.NewCounters(tbl, size)
	prop := propagate.New(wv, tbl, size, counters, &stubNotifier{})

	removed := wv.Force(6, 1)
	for _, rp := range removed {
		prop.Enqueue(propagate.Removal{CellIdx: 6, Pattern: rp.Pattern})
	}
	ok, _, _ := prop.Run()
	require.True(t, ok, "unexpected contradiction")

	for cellIdx := 0; cellIdx < size.NumCells(); cellIdx++ {
		cell := wv.Cell(cellIdx)
		for p := catalogue.PatternID(0); int(p) < tbl.NumPatterns(); p++ {
			if !cell.Possible(p) {
				continue
			}
			for _, d := range direction.All {
				nIdx, ok := size.NeighbourIndex(cellIdx, d)
				if !ok {
					continue
				}
				want := 0
				for _, q := range tbl.Compat(p, d) {
					if wv.Cell(nIdx).Possible(q) {
						want++
					}
				}
				got := int(counters.Get(cellIdx, p, d))
				require.Equalf(t, want, got, "cell %d pattern %d dir %v support count", cellIdx, p, d)
			}
		}
	}
}

// TestRun_IdempotentExtraRound checks the law that running an extra empty
// propagation round after quiescence changes nothing.
func TestRun_IdempotentExtraRound(t *testing.T) {
	tbl := chequerboardTable(t)
	size := direction.Size{Width: 4, Height: 4, Wrap: direction.Torus}
	wv := wave.New(tbl, size.NumCells(), wfcrng.New(2))
	counters := propagate.NewCounters(tbl, size)
	prop := propagate.New(wv, tbl, size, counters, &stubNotifier{})

	removed := wv.Force(0, 0)
	for _, rp := range removed {
		prop.Enqueue(propagate.Removal{CellIdx: 0, Pattern: rp.Pattern})
	}
	prop.Run()

	before := wv.Snapshot()
	prop.Reset()
	ok, _, _ := prop.Run() // nothing queued: must be a no-op
	require.True(t, ok, "empty Run() should not contradict")
	after := wv.Snapshot()
	for i := range before {
		require.Equalf(t, before[i], after[i], "cell %d changed on an empty propagation round", i)
	}
}
