package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/molecule"
)

func buildBigDescriptor(t *testing.T) *molecule.Descriptor {
	t.Helper()
	// A scaled-down stand-in for spec.md §8 scenario 5's C2000H4000N500O600.
	d, err := molecule.NewFromArrays(
		[]int{2, 2, 2, 3},
		[]int{40, 80, 10, 12},
		[][]float64{
			{12.0, 13.003355},
			{1.007825, 2.014102},
			{14.003074, 15.000109},
			{15.994915, 16.999132, 17.99916},
		},
		[][]float64{
			{.9893, .0107},
			{.999885, .000115},
			{.99636, .00364},
			{.99757, .00038, .00205},
		},
	)
	require.NoError(t, err)
	return d
}

func TestLayered_FirstLayerSumInZeroOne(t *testing.T) {
	g := generator.NewLayered(buildBigDescriptor(t), -3.0, 256, 256)

	count := 0
	for g.Advance() {
		count++
		if count >= 2000 {
			break
		}
	}
	require.Greater(t, count, 0)
	total := g.TotalEProb()
	assert.Greater(t, total, 0.0)
	assert.LessOrEqual(t, total, 1.0+1e-9)
}

func TestLayered_TotalEProbNonDecreasing(t *testing.T) {
	g := generator.NewLayered(buildBigDescriptor(t), -3.0, 256, 256)

	prev := 0.0
	for i := 0; i < 5000 && g.Advance(); i++ {
		total := g.TotalEProb()
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestLayered_UniqueEmissions(t *testing.T) {
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{6, 6},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g := generator.NewLayered(d, -3.0, 32, 32)
	seen := make(map[[4]int32]struct{})
	buf := make([]int32, 4)
	for i := 0; i < 40 && g.Advance(); i++ {
		g.WriteConfSignature(buf)
		key := [4]int32{buf[0], buf[1], buf[2], buf[3]}
		_, dup := seen[key]
		assert.False(t, dup)
		seen[key] = struct{}{}
	}
}

func TestLayered_TargetProbabilityStopsEnumeration(t *testing.T) {
	g := generator.NewLayered(buildBigDescriptor(t), -3.0, 256, 256)
	g.SetTargetProbability(0.5)

	iterations := 0
	for g.Advance() {
		iterations++
		if iterations > 200000 {
			t.Fatal("layered generator did not honor target probability")
		}
	}
	assert.GreaterOrEqual(t, g.TotalEProb(), 0.5)
}

func TestLayered_Monoisotopic(t *testing.T) {
	d, err := molecule.NewFromArrays([]int{1}, []int{4}, [][]float64{{1.0}}, [][]float64{{1.0}})
	require.NoError(t, err)

	g := generator.NewLayered(d, -3.0, 8, 8)
	require.True(t, g.Advance())
	assert.InDelta(t, 1.0, g.EProb(), 1e-9)
}

func TestLayered_ConservesAtomCount(t *testing.T) {
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{8, 8},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g := generator.NewLayered(d, -3.0, 32, 32)
	buf := make([]int32, 4)
	for i := 0; i < 30 && g.Advance(); i++ {
		g.WriteConfSignature(buf)
		assert.Equal(t, int32(8), buf[0]+buf[1])
		assert.Equal(t, int32(8), buf[2]+buf[3])
	}
}
