// Package formula tokenizes chemical formula strings such as "C2H6O"
// or "H2 O" into a sequence of (element symbol, atom count) terms, the
// external parser collaborator referenced by spec.md §1/§6's
// Iso(formula) constructor.
//
// The grammar accepted is a whitespace-insensitive sequence of element
// symbols (one uppercase letter optionally followed by one lowercase
// letter) each optionally followed by a positive decimal count, the
// count defaulting to 1 when omitted — the common convention used by
// most chemical-formula notations, extending spec.md's literal grammar
// rather than narrowing it.
package formula
