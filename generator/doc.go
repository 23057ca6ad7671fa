// Package generator implements the three joint enumeration disciplines
// of spec.md §4.4, each built on the per-element marginals of package
// marginal and consuming a molecule.Descriptor at construction:
//
//   - Ordered: emits joint configurations in strictly decreasing
//     log-probability, backed by a container/heap priority queue over
//     growing marginal.Trek frontiers.
//   - Threshold (and its count-only sibling ThresholdCounter): emits
//     every joint configuration at or above a log-probability cutoff,
//     in unspecified order, via a mixed-radix odometer over
//     marginal.Precalculated tables with exact suffix/prefix pruning.
//   - Layered: emits configurations in expanding probability bands,
//     re-extending its marginal.Layered tables on demand.
//
// All three share the common Generator streaming contract: Advance,
// LProb/Mass/EProb, WriteConfSignature, Terminate.
package generator
