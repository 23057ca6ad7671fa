package numeric

import "math"

// MinusLogFactorial returns -logΓ(n+1), i.e. -log(n!), for n ≥ 0.
// Computed via math.Lgamma rather than an explicit product to stay
// accurate for the large atom counts (hundreds to thousands) this
// package is used with.
//
// Complexity: O(1).
func MinusLogFactorial(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return -lg
}

// LogBinomial returns log(C(n, k)), the log of the binomial coefficient,
// for 0 ≤ k ≤ n. Computed from log-factorials to avoid overflow for
// large n.
//
// Complexity: O(1).
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}

	return -MinusLogFactorial(n) + MinusLogFactorial(k) + MinusLogFactorial(n-k)
	// NOTE: MinusLogFactorial(n) == -log(n!), so -MinusLogFactorial(n) == log(n!).
}

// roundUp nudges a float64 one ULP toward +∞, a cheap stand-in for
// computing the sum under a toward-+∞ rounding mode.
func roundUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

// roundTowardZero nudges a float64 one ULP toward zero, a cheap stand-in
// for computing the sum under a toward-zero rounding mode. For the
// strictly negative sums this package accumulates (log-factorial terms),
// "toward zero" means "increase" (less negative), matching roundUp; the
// helper exists separately so call sites read as the spec's two distinct
// rounding directions even though the bit-level operation coincides for
// this sign.
func roundTowardZero(x float64) float64 {
	if x <= 0 {
		return math.Nextafter(x, math.Inf(1))
	}

	return math.Nextafter(x, 0)
}

// MultinomialLogProb returns the log-probability of observing the
// per-isotope configuration counts (Σcounts == atomCount) under the
// multinomial distribution with per-isotope probabilities probs, rounded
// so the returned value is a conservative upper bound of the true
// log-probability (spec invariant I3).
//
// The computation follows spec.md §4.1 exactly:
//  1. toward-zero accumulation of Σ -log(counts[i]!)
//  2. toward-+∞ accumulation of Σ counts[i]·log(probs[i])
//  3. + log(atomCount!) (toward-zero, constant per element)
//
// Complexity: O(len(counts)).
func MultinomialLogProb(counts []int, probs []float64, atomCount int) float64 {
	// Stage 1: toward-zero sum of per-isotope -log(c!).
	var negLogFact float64
	for _, c := range counts {
		negLogFact = roundTowardZero(negLogFact + MinusLogFactorial(c))
	}

	// Stage 2: toward-+∞ sum of c·log(p).
	var weighted float64
	for i, c := range counts {
		if c == 0 {
			continue
		}
		weighted = roundUp(weighted + float64(c)*math.Log(probs[i]))
	}

	// Stage 3: additive constant log(atomCount!), computed toward zero.
	logAtomFact := roundTowardZero(-MinusLogFactorial(atomCount))

	return negLogFact + weighted + logAtomFact
}
