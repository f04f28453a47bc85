// Package catalogue — immutable pattern tables for the wfc solver.
//
// Overview:
//
//   - A Table assigns each pattern a positive frequency weight and, for
//     each of the four cardinal directions, the set of patterns that may
//     legally sit in that neighbour.
//   - The compatibility relation must be symmetric: this is checked once,
//     at construction, never at solve time.
//
// When to use:
//
//   - Build exactly one Table per sample (the catalogue is immutable and
//     reused across every run and every collapse_retrying attempt on that
//     sample).
//
// Errors (sentinel):
//
//   - ErrEmptyCatalogue, ErrZeroWeight, ErrAsymmetricCompat,
//     ErrCatalogueTooLarge, ErrPatternOutOfRange.
//
// Thread safety:
//
//   - Table is read-only after New returns and may be shared across any
//     number of goroutines without synchronization.
package catalogue
