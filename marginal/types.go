package marginal

import "math"

// Base holds one element's multinomial distribution over its stable
// isotopes: IsotopeCount isotopes, AtomCount atoms distributed among
// them, with per-isotope Masses (Da) and Probs (natural abundances,
// summing to 1 within tolerance).
//
// Base is immutable after construction; Trek/Precalculated/Layered wrap
// it to add streaming/precomputed state.
type Base struct {
	IsotopeCount int
	AtomCount    int
	Masses       []float64
	Probs        []float64
}

// tolerance for |Σp - 1|, matching spec.md §7's InvalidDescriptor bound.
const probSumTolerance = 1e-6

// NewBase validates and constructs an element's Base marginal.
//
// Complexity: O(isotopeCount).
func NewBase(atomCount int, masses, probs []float64) (Base, error) {
	isotopeCount := len(masses)
	if isotopeCount < 1 {
		return Base{}, ErrNoIsotopes
	}
	if atomCount < 0 {
		return Base{}, ErrNegativeAtomCount
	}
	if len(probs) != isotopeCount {
		return Base{}, ErrLengthMismatch
	}

	var sum float64
	for i := 0; i < isotopeCount; i++ {
		if math.IsNaN(masses[i]) || math.IsInf(masses[i], 0) ||
			math.IsNaN(probs[i]) || math.IsInf(probs[i], 0) {
			return Base{}, ErrNonFinite
		}
		sum += probs[i]
	}
	if math.Abs(sum-1.0) > probSumTolerance {
		return Base{}, ErrProbabilitiesNotNormalized
	}

	return Base{
		IsotopeCount: isotopeCount,
		AtomCount:    atomCount,
		Masses:       append([]float64(nil), masses...),
		Probs:        append([]float64(nil), probs...),
	}, nil
}

// ConfMass returns Σ c[i]·mass[i] for the given per-isotope count vector.
func (b Base) ConfMass(conf []int) float64 {
	var m float64
	for i, c := range conf {
		m += float64(c) * b.Masses[i]
	}
	return m
}

// ConfEProb returns exp(lprob), the linear probability corresponding to
// a log-probability value. Extreme tails may legitimately underflow to
// 0 (spec.md §6's numeric contract); callers must not treat 0 as an
// error or a termination signal.
func ConfEProb(lprob float64) float64 {
	return math.Exp(lprob)
}
