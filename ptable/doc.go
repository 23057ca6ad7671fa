// Package ptable is a small, hand-maintained periodic table of the
// common bio-organic elements and their stable (and long-lived
// radioactive, where conventionally reported alongside stable ones,
// e.g. none included here) isotopes, sufficient for the worked examples
// of spec.md §8 and everyday organic-chemistry formulas. It is not a
// goal of this module to be a complete periodic table (mirroring
// spec.md's Non-goals for anything beyond the enumeration engine
// itself); callers needing exotic elements should construct a
// molecule.Descriptor directly from explicit arrays instead.
//
// Isotope masses and natural abundances are taken from the CIAAW/NIST
// consensus values as of this package's writing.
package ptable
