package wave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/wave"
	"github.com/katalvlaran/wfc/wfcrng"
)

func threePatternTable(t *testing.T) *catalogue.Table {
	t.Helper()
	specs := []catalogue.Spec{
		{Weight: 1}, {Weight: 2}, {Weight: 3},
	}
	tbl, err := catalogue.New(specs)
	require.NoError(t, err)
	return tbl
}

func TestNew_AllPossible(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 4, wfcrng.New(1))
	for i := 0; i < w.NumCells(); i++ {
		c := w.Cell(i)
		require.Equalf(t, 3, c.NumPossible(), "cell %d NumPossible()", i)
		require.Falsef(t, c.Decided(), "cell %d should not be decided initially", i)
	}
}

func TestRemove_ToDecided(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))

	res := w.Remove(0, 0)
	require.Equal(t, wave.Ok, res.Outcome, "first Remove outcome")

	res = w.Remove(0, 1)
	require.Equal(t, wave.Decided, res.Outcome, "second Remove outcome")
	require.Equal(t, catalogue.PatternID(2), res.Pattern)

	chosen, ok := w.Cell(0).ChosenPattern()
	require.True(t, ok)
	require.Equal(t, catalogue.PatternID(2), chosen)
}

func TestRemove_ToContradiction(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))

	w.Remove(0, 0)
	w.Remove(0, 1)
	res := w.Remove(0, 2)
	require.Equal(t, wave.Contradiction, res.Outcome)
}

func TestRemove_IdempotentOnAlreadyImpossible(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))

	w.Remove(0, 0)
	before := w.Cell(0).NumPossible()
	res := w.Remove(0, 0) // already removed
	require.Equal(t, wave.Ok, res.Outcome, "re-removing an impossible pattern should be a no-op Ok")
	require.Equal(t, before, w.Cell(0).NumPossible(), "NumPossible changed on a no-op remove")
}

func TestForce_RemovesEveryOtherPattern(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))

	removed := w.Force(0, 1)
	require.Len(t, removed, 2)

	chosen, ok := w.Cell(0).ChosenPattern()
	require.True(t, ok)
	require.Equal(t, catalogue.PatternID(1), chosen)
}

func TestEntropyKey_MatchesFormula(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))
	c := w.Cell(0)

	var sumW float64 = 1 + 2 + 3
	var sumLW float64
	for p := 0; p < 3; p++ {
		sumLW += float64(tbl.Weight(catalogue.PatternID(p))) * math.Log(float64(tbl.Weight(catalogue.PatternID(p))))
	}
	want := math.Log(sumW) - sumLW/sumW

	got := c.EntropyKey()
	// noise is in [0, 1e-6): allow for it in the comparison.
	require.GreaterOrEqual(t, got, want)
	require.Less(t, got, want+1e-6)
}

func TestSnapshot_IsIndependentOfLiveState(t *testing.T) {
	tbl := threePatternTable(t)
	w := wave.New(tbl, 1, wfcrng.New(1))
	snap := w.Snapshot()

	w.Remove(0, 0)
	w.Remove(0, 1)

	require.Equal(t, 3, snap[0].NumPossible, "snapshot was mutated by later Remove calls")
	require.Equal(t, 1, w.Cell(0).NumPossible(), "live cell should reflect the later removals")
}
