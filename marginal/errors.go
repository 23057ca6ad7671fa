package marginal

import "errors"

// Sentinel errors returned while constructing or querying an element marginal.
var (
	// ErrNoIsotopes indicates isotopeCount < 1; every element must have
	// at least one stable isotope (spec.md §3: "isotope_count ≥ 1").
	ErrNoIsotopes = errors.New("marginal: element must have at least one isotope")

	// ErrNegativeAtomCount indicates atomCount < 0.
	ErrNegativeAtomCount = errors.New("marginal: atom count must be non-negative")

	// ErrLengthMismatch indicates masses/probabilities slices whose length
	// does not equal the declared isotope count.
	ErrLengthMismatch = errors.New("marginal: masses/probabilities length mismatch")

	// ErrProbabilitiesNotNormalized indicates Σp deviates from 1 by more
	// than the tolerance in spec.md §7 (InvalidDescriptor: |Σp−1| > 1e-6).
	ErrProbabilitiesNotNormalized = errors.New("marginal: isotope probabilities do not sum to 1")

	// ErrNonFinite indicates a non-finite mass or probability value.
	ErrNonFinite = errors.New("marginal: non-finite mass or probability")
)
