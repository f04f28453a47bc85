// Package wfc is a Wave Function Collapse constraint solver: given a
// frequency-weighted catalogue of small fixed-size patterns and an
// adjacency relation between them, it populates a two-dimensional grid
// of cells such that every placed pattern is locally compatible with
// its neighbours and the global frequency distribution approximates
// the sample's.
//
// What is wfc?
//
//	A single-threaded, non-blocking constraint solver core, built around:
//
//	  - A dense bitset "wave" of still-possible patterns per cell
//	  - A worklist propagator that cascades removals to quiescence
//	  - A lazily-invalidated min-heap keyed by weighted Shannon entropy
//	  - A run controller driving observe/propagate to completion or
//	    contradiction, with optional parallel restart on failure
//
// Why choose wfc?
//
//   - Grid-agnostic       — no dependency on image decoding or palettes
//   - Deterministic       — identical seed + catalogue + grid ⇒ identical wave
//   - Allocation-disciplined — the wave and support counters are allocated
//     at construction; observations still allocate their removal slices
//
// Everything is organized under focused subpackages:
//
//	direction/ — cardinal directions, grid size, torus/clip neighbour walking
//	catalogue/ — immutable pattern table: weights, log-weights, compatibility
//	wave/      — per-cell possibility bitset and entropy bookkeeping
//	propagate/ — compatibility counters and the cascading worklist propagator
//	entropy/   — the lazy-invalidated entropy priority queue
//	observe/   — lowest-entropy cell selection and weighted sampling
//	wfcrng/    — deterministic RNG capability and SplitMix64 stream derivation
//	wfcrun/    — the run controller: step, step_all, global constraints, retries
//
// Image ingest (pattern extraction, colour-space arithmetic, painting the
// completed wave back to pixels) is an external collaborator's concern and
// is intentionally not part of this module; see cmd/wfcexamples for a
// synthetic, image-free demonstration of the bundled scenarios.
//
//	go get github.com/katalvlaran/wfc
package wfc
