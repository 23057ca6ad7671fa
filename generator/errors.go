package generator

import "errors"

// ErrNonPositiveThreshold indicates a threshold-generator threshold
// parameter that is not strictly positive (spec.md §6's
// IsoThresholdGenerator requires threshold > 0).
var ErrNonPositiveThreshold = errors.New("generator: threshold must be > 0")
