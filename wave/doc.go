// Package wave implements the per-cell possibility state for the wfc
// solver.
//
// Overview:
//
//   - Each Cell holds a dense bitset of still-possible pattern ids plus
//     running sum_weights/sum_logw/num_possible, so entropy and chosen-
//     pattern queries are O(1).
//   - Remove and Force are the only mutators; both keep the running sums
//     consistent and report Decided/Contradiction as return values, never
//     as exceptions.
//
// Numeric note:
//
//   - EntropyKey is always recomputed from stored sums, never maintained
//     incrementally, to avoid floating-point drift breaking the priority
//     queue's ordering.
package wave
