// Package numeric provides the low-level numeric kernel the rest of
// isospec is built on: log-gamma/log-binomial primitives, a
// directed-rounding discipline for multinomial log-probabilities, and a
// Kahan-style compensated running sum.
//
// Directed rounding:
//
//   - MultinomialLogProb computes the log-probability of a per-isotope
//     count vector as an upper bound on the true value: the "-logΓ(c+1)"
//     term is rounded toward zero (it is always negative, rounding toward
//     zero makes it less negative, i.e. larger) and the "c·log p" term is
//     rounded toward +∞. Summed, the result is guaranteed to be ≥ the
//     true (infinite-precision) log-probability.
//   - This matters only for the threshold test in generator.Threshold:
//     a configuration whose true log-probability is exactly at the
//     cutoff must never be dropped because of rounding noise (spec
//     invariant I3). Go has no portable ambient FPU rounding-mode
//     control, so instead of mutating global state (which would also be
//     unsafe across concurrently served HTTP requests) each directed sum
//     is computed as a plain float64 sum nudged outward by one ULP via
//     math.Nextafter, which is a safe, purely-local upper/lower bound.
//
// Complexity: all functions here are O(1) or O(n) in the length of the
// input vector; none allocates beyond its return value.
package numeric
