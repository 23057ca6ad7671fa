package molecule

import "errors"

// Sentinel errors returned while constructing a Descriptor.
var (
	// ErrNoElements indicates a descriptor with fewer than one element
	// (spec.md §7 InvalidDescriptor's "isotope_count ≥ 1" analog applied
	// at the joint level: dim ≥ 1).
	ErrNoElements = errors.New("molecule: descriptor must have at least one element")

	// ErrDimMismatch indicates isotopeNumbers/atomCounts/masses/probabilities
	// slices of inconsistent lengths.
	ErrDimMismatch = errors.New("molecule: element array length mismatch")

	// ErrInvalidDescriptor wraps a per-element construction failure
	// (spec.md §7 InvalidDescriptor: atom_count < 0, isotope_count < 1,
	// |Σp−1| > 1e-6, or a non-finite mass/probability).
	ErrInvalidDescriptor = errors.New("molecule: invalid element descriptor")
)

// movedDescriptorMessage is the panic message raised by every Descriptor
// accessor once the descriptor has been moved/consumed. Go has no
// separate debug/release build mode, so spec.md §7's
// MisuseOfMovedDescriptor ("panic/assert in debug, unspecified in
// release") is implemented as an unconditional panic.
const movedDescriptorMessage = "molecule: use of a moved or consumed Descriptor"
