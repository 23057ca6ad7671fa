// Package molecule implements the joint isotopologue descriptor: a set
// of per-element multinomial marginals (package marginal) bundled with
// the derived scalars a generator needs before it starts streaming —
// the joint mode log-probability and the lightest/heaviest possible
// peak masses (spec.md §4.3).
//
// A Descriptor is constructed once, from either explicit per-element
// arrays or a chemical formula string, and is then handed to exactly
// one generator constructor, which Consumes it: ownership of the
// underlying element marginals transfers to the generator and the
// source Descriptor is marked inert (spec.md §4.3, §7
// MisuseOfMovedDescriptor). Clone and CloneShallow exist for callers
// that need to keep working with a descriptor after promoting a copy
// of it, mirroring the shallow-struct-copy-vs-deep-copy-of-owned-state
// split used elsewhere in this codebase for cloning composite values.
package molecule
