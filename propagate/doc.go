// Package propagate implements the support counters and the worklist
// propagation engine that cascade pattern removals to quiescence.
//
// Overview:
//
//   - Counters track, per (cell, pattern, direction), how many compatible
//     patterns remain possible in the neighbour; reaching zero is the
//     trigger for removing that pattern from the cell.
//   - Propagator drains a worklist of removals breadth-first, cascading
//     further removals until quiescence or a Contradiction.
//
// A contradiction is a normal outcome, returned as a value from
// Propagator.Run, never as an error or panic.
package propagate
