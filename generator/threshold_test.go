package generator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/molecule"
)

func TestThreshold_RejectsNonPositiveThreshold(t *testing.T) {
	_, err := generator.NewThreshold(buildCarbon2(t), 0, true, 16, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrNonPositiveThreshold)
}

func TestThreshold_H2O_Scenario(t *testing.T) {
	// spec.md §8 scenario 1: Iso("H2O"), threshold(0.001, absolute=true)
	// includes 1H2 16O (eprob≈0.9972) and excludes 2H2 16O (eprob≈1.3e-8).
	d, err := molecule.NewFromArrays(
		[]int{2, 3},
		[]int{2, 1},
		[][]float64{{1.007825, 2.014102}, {15.994915, 16.999132, 17.99916}},
		[][]float64{{.999885, .000115}, {.99757, .00038, .00205}},
	)
	require.NoError(t, err)

	g, err := generator.NewThreshold(d, 0.001, true, 64, 64)
	require.NoError(t, err)

	var maxEProb float64
	count := 0
	for g.Advance() {
		count++
		assert.GreaterOrEqual(t, g.LProb(), math.Log(0.001))
		if g.EProb() > maxEProb {
			maxEProb = g.EProb()
		}
	}
	require.Greater(t, count, 0)
	assert.InDelta(t, 0.9972, maxEProb, 2e-3)
}

func TestThreshold_RelativeCutoff_BoundsLProb(t *testing.T) {
	// spec.md §8 scenario 3, scaled down.
	d, err := molecule.NewFromArrays([]int{2}, []int{40}, [][]float64{{12.0, 13.003355}}, [][]float64{{.9893, .0107}})
	require.NoError(t, err)

	modeLProb := d.ModeLProb()
	g, err := generator.NewThreshold(d, 0.01, false, 64, 64)
	require.NoError(t, err)

	count := 0
	for g.Advance() {
		count++
		assert.GreaterOrEqual(t, g.LProb(), modeLProb+math.Log(0.01))
	}
	assert.Greater(t, count, 0)
}

func TestThreshold_VeryLowRelativeCutoff_TotalProbabilityNearOne(t *testing.T) {
	// spec.md §8 scenario 4, scaled down for test speed.
	d, err := molecule.NewFromArrays([]int{2}, []int{25}, [][]float64{{12.0, 13.003355}}, [][]float64{{.9893, .0107}})
	require.NoError(t, err)

	g, err := generator.NewThreshold(d, 1e-30, false, 128, 128)
	require.NoError(t, err)

	var total float64
	for g.Advance() {
		total += g.EProb()
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestThreshold_Monoisotopic(t *testing.T) {
	d, err := molecule.NewFromArrays([]int{1}, []int{7}, [][]float64{{1.0}}, [][]float64{{1.0}})
	require.NoError(t, err)

	g, err := generator.NewThreshold(d, 0.5, true, 8, 8)
	require.NoError(t, err)

	require.True(t, g.Advance())
	assert.InDelta(t, 1.0, g.EProb(), 1e-9)
	assert.False(t, g.Advance())
}

func TestThreshold_ConservesAtomCount(t *testing.T) {
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{10, 10},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g, err := generator.NewThreshold(d, 1e-6, false, 64, 64)
	require.NoError(t, err)

	buf := make([]int32, 4)
	for g.Advance() {
		g.WriteConfSignature(buf)
		assert.Equal(t, int32(10), buf[0]+buf[1])
		assert.Equal(t, int32(10), buf[2]+buf[3])
	}
}

func TestThreshold_UnreachableCutoffYieldsNothing(t *testing.T) {
	d, err := molecule.NewFromArrays([]int{2}, []int{5}, [][]float64{{12.0, 13.003355}}, [][]float64{{.9893, .0107}})
	require.NoError(t, err)

	g, err := generator.NewThreshold(d, 2.0, true, 8, 8) // log(2) > 0 ≥ any lprob
	require.NoError(t, err)

	assert.False(t, g.Advance())
}
