package catalogue

import "errors"

// Sentinel errors for catalogue construction. All are construction-time
// fail-fast errors, never returned once a Table has been built.
var (
	// ErrEmptyCatalogue indicates New was called with zero pattern specs.
	ErrEmptyCatalogue = errors.New("catalogue: must contain at least one pattern")

	// ErrZeroWeight indicates a pattern with a zero frequency weight, which
	// would make it unselectable yet still cost propagation time.
	ErrZeroWeight = errors.New("catalogue: pattern weight must be positive")

	// ErrAsymmetricCompat indicates compat[p][d] and compat[q][opposite(d)]
	// disagree about whether p and q may be neighbours.
	ErrAsymmetricCompat = errors.New("catalogue: compatibility relation is not symmetric")

	// ErrCatalogueTooLarge indicates a (pattern, direction) compatibility
	// set exceeds MaxSupportCount and would overflow the support counters.
	ErrCatalogueTooLarge = errors.New("catalogue: compatibility set exceeds maximum support count")

	// ErrPatternOutOfRange indicates a compat set references a pattern id
	// outside [0, P).
	ErrPatternOutOfRange = errors.New("catalogue: pattern id out of range")
)
