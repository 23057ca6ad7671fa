package marginal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/marginal"
)

// buildCarbon2 is the C2 element marginal used in spec.md §8 scenario 2:
// two carbon atoms, two stable isotopes.
func buildCarbon2(t *testing.T) marginal.Base {
	t.Helper()
	base, err := marginal.NewBase(2, []float64{12.0, 13.003355}, []float64{.9893, .0107})
	require.NoError(t, err)
	return base
}

func TestTrek_EmitsDecreasingLProb(t *testing.T) {
	trek := marginal.NewTrek(buildCarbon2(t), 16, 16)
	require.True(t, trek.EnsureCount(3) == 3)

	assert.GreaterOrEqual(t, trek.LProb(0), trek.LProb(1))
	assert.GreaterOrEqual(t, trek.LProb(1), trek.LProb(2))
}

func TestTrek_FirstThreeConfigurations_MatchWorkedExample(t *testing.T) {
	// spec.md §8 scenario 2: eprob(12C2)≈0.9785, eprob(12C13C)≈0.0213, eprob(13C2)≈1.16e-4.
	trek := marginal.NewTrek(buildCarbon2(t), 16, 16)
	trek.EnsureCount(3)

	assert.InDelta(t, 0.9785, trek.EProb(0), 1e-3)
	assert.InDelta(t, 0.0213, trek.EProb(1), 1e-3)
	assert.InDelta(t, 1.16e-4, trek.EProb(2), 1e-5)

	assert.Equal(t, []int{2, 0}, trek.Conf(0))
	assert.Equal(t, []int{1, 1}, trek.Conf(1))
	assert.Equal(t, []int{0, 2}, trek.Conf(2))
}

func TestTrek_ConservesAtomCount(t *testing.T) {
	trek := marginal.NewTrek(buildCarbon2(t), 16, 16)
	trek.EnsureCount(3)
	for i := 0; i < trek.ConfCount(); i++ {
		conf := trek.Conf(i)
		sum := conf[0] + conf[1]
		assert.Equal(t, 2, sum)
	}
}

func TestTrek_MonoisotopicSingleConfiguration(t *testing.T) {
	base, err := marginal.NewBase(5, []float64{1.0}, []float64{1.0})
	require.NoError(t, err)

	trek := marginal.NewTrek(base, 4, 4)
	assert.True(t, trek.Advance())
	assert.False(t, trek.Advance())
	assert.InDelta(t, 1.0, trek.EProb(0), 1e-9)
}

func TestPrecalculated_SortedDescending(t *testing.T) {
	p := marginal.NewPrecalculated(buildCarbon2(t), -100, 16, 16)
	for i := 1; i < p.ConfCount(); i++ {
		assert.GreaterOrEqual(t, p.LProb(i-1), p.LProb(i))
	}
}

func TestPrecalculated_RespectsCutoff(t *testing.T) {
	cutoff := -3.0
	p := marginal.NewPrecalculated(buildCarbon2(t), cutoff, 16, 16)
	for i := 0; i < p.ConfCount(); i++ {
		assert.GreaterOrEqual(t, p.LProb(i), cutoff)
	}
}

func TestLayered_ExtensionAppendsWithoutLosingPriorLayers(t *testing.T) {
	l := marginal.NewLayered(buildCarbon2(t), 16, 16)
	l.ExtendTo(-1.0)
	firstLayerCount := l.ConfCount()
	require.Greater(t, firstLayerCount, 0)

	l.ExtendTo(-10.0)
	assert.GreaterOrEqual(t, l.ConfCount(), firstLayerCount)

	start0, end0 := l.LayerBounds(0)
	assert.Equal(t, 0, start0)
	assert.Equal(t, firstLayerCount, end0)
}
