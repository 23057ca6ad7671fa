// Package marginal implements the per-element subisotopologue
// distribution: given one element's isotope masses and abundances and
// its atom count, it computes the mode configuration, generates
// one-atom-move neighbors, and offers three progressively richer
// "precomputed" forms consumed by the joint generators in package
// generator:
//
//   - Trek: an on-demand, container/heap-driven enumeration of
//     configurations in strictly decreasing log-probability, seeded at
//     the mode. Backs generator.Ordered, whose frontier grows on demand
//     past whatever the trek has visited so far.
//   - Precalculated: runs a Trek to completion down to a fixed cutoff and
//     freezes the result into contiguous, cache-friendly arrays sorted by
//     decreasing log-probability. Backs generator.Threshold.
//   - Layered: a Precalculated that can be re-extended to a lower cutoff
//     without discarding what it already computed. Backs
//     generator.Layered.
//
// All three share the same neighbor-move algebra: from configuration c,
// moving one atom from isotope i to isotope j changes the log-probability
// by log(c[i]/(c[j]+1)) + log(p[j]/p[i]) (spec.md §4.2). Grounded on the
// lazy "push duplicates, ignore stale pops" discipline used by
// container/heap-driven graph algorithms (Dijkstra, Prim) elsewhere in
// this style of codebase, applied here to log-probability frontiers
// instead of shortest-path frontiers.
package marginal
