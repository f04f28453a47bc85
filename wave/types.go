package wave

import "github.com/katalvlaran/wfc/catalogue"

// RemoveOutcome classifies the result of removing a pattern from a cell.
type RemoveOutcome uint8

const (
	// Ok means the cell still has 2+ possible patterns after the removal.
	Ok RemoveOutcome = iota
	// Decided means exactly one pattern remains possible.
	Decided
	// Contradiction means no pattern remains possible.
	Contradiction
)

// RemoveResult is the outcome of Cell.Remove, carrying the remaining
// pattern id when the cell became Decided.
type RemoveResult struct {
	Outcome RemoveOutcome
	// Pattern is the surviving pattern id; meaningful only when
	// Outcome == Decided.
	Pattern catalogue.PatternID
}
