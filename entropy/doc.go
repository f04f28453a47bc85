// Package entropy implements a lazy-invalidated priority queue over
// cells keyed by entropy.
//
// Tie-breaking: the entropy key passed to Push already carries the
// cell's one-time init noise (see package wave), so ties among cells
// with identical possibility sets resolve deterministically given the
// same RNG seed.
package entropy
