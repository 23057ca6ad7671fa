package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherchem/isospec/numeric"
)

func TestMinusLogFactorial_KnownValues(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want float64
	}{
		{0, 0},
		{1, 0},
		{2, -math.Log(2)},
		{5, -math.Log(120)},
	} {
		got := numeric.MinusLogFactorial(tc.n)
		assert.InDeltaf(t, tc.want, got, 1e-9, "n=%d", tc.n)
	}
}

func TestLogBinomial_PascalsRule(t *testing.T) {
	// C(6,2) == 15
	got := numeric.LogBinomial(6, 2)
	assert.InDelta(t, math.Log(15), got, 1e-9)
}

func TestLogBinomial_OutOfRange(t *testing.T) {
	assert.True(t, math.IsInf(numeric.LogBinomial(5, 6), -1))
	assert.True(t, math.IsInf(numeric.LogBinomial(5, -1), -1))
}

// TestMultinomialLogProb_MatchesBruteForce cross-checks the directed-rounding
// kernel against a plain (undirected) computation for a small element: the
// two must agree to within a handful of ULPs, and the kernel's value must
// never be smaller than the plain value (it is an upper bound, spec I3).
func TestMultinomialLogProb_MatchesBruteForce(t *testing.T) {
	probs := []float64{0.9893, 0.0107}
	atomCount := 10
	for c0 := 0; c0 <= atomCount; c0++ {
		counts := []int{c0, atomCount - c0}
		got := numeric.MultinomialLogProb(counts, probs, atomCount)

		plain := numeric.LogBinomial(atomCount, c0)
		for i, c := range counts {
			plain += float64(c) * math.Log(probs[i])
		}

		assert.GreaterOrEqualf(t, got, plain-1e-9, "counts=%v", counts)
		assert.InDeltaf(t, plain, got, 1e-6, "counts=%v", counts)
	}
}

func TestMultinomialLogProb_MonoisotopicIsZero(t *testing.T) {
	got := numeric.MultinomialLogProb([]int{7}, []float64{1.0}, 7)
	assert.InDelta(t, 0.0, got, 1e-9)
}
