package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/molecule"
)

func buildCarbon2(t *testing.T) *molecule.Descriptor {
	t.Helper()
	d, err := molecule.NewFromArrays(
		[]int{2},
		[]int{2},
		[][]float64{{12.0, 13.003355}},
		[][]float64{{.9893, .0107}},
	)
	require.NoError(t, err)
	return d
}

func TestOrdered_MatchesWorkedExample(t *testing.T) {
	// spec.md §8 scenario 2.
	g := generator.NewOrdered(buildCarbon2(t), 16, 16)

	require.True(t, g.Advance())
	assert.InDelta(t, 0.9785, g.EProb(), 1e-3)

	require.True(t, g.Advance())
	assert.InDelta(t, 0.0213, g.EProb(), 1e-3)

	require.True(t, g.Advance())
	assert.InDelta(t, 1.16e-4, g.EProb(), 1e-5)
}

func TestOrdered_MonotonicallyNonIncreasing(t *testing.T) {
	// spec.md §8's P3/scenario 6, scaled down for test speed.
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{20, 20},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g := generator.NewOrdered(d, 64, 64)

	var prev float64
	first := true
	for i := 0; i < 500 && g.Advance(); i++ {
		if !first {
			assert.LessOrEqual(t, g.LProb(), prev)
		}
		prev = g.LProb()
		first = false
	}
}

func TestOrdered_ConservesAtomCount(t *testing.T) {
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{3, 5},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g := generator.NewOrdered(d, 32, 32)
	buf := make([]int32, 4)
	for i := 0; i < 20 && g.Advance(); i++ {
		g.WriteConfSignature(buf)
		assert.Equal(t, int32(3), buf[0]+buf[1])
		assert.Equal(t, int32(5), buf[2]+buf[3])
	}
}

func TestOrdered_UniqueEmissions(t *testing.T) {
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{6, 6},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	g := generator.NewOrdered(d, 32, 32)
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

func TestOrdered_Monoisotopic_SingleConfiguration(t *testing.T) {
	d, err := molecule.NewFromArrays([]int{1}, []int{9}, [][]float64{{1.0}}, [][]float64{{1.0}})
	require.NoError(t, err)

	g := generator.NewOrdered(d, 4, 4)
	require.True(t, g.Advance())
	assert.InDelta(t, 1.0, g.EProb(), 1e-9)
	assert.False(t, g.Advance())
}

func TestOrdered_ZeroAtoms_SingleEmptyConfiguration(t *testing.T) {
	d, err := molecule.NewFromArrays([]int{2}, []int{0}, [][]float64{{12.0, 13.0}}, [][]float64{{.9, .1}})
	require.NoError(t, err)

	g := generator.NewOrdered(d, 4, 4)
	require.True(t, g.Advance())
	assert.InDelta(t, 1.0, g.EProb(), 1e-9)
	assert.False(t, g.Advance())
}

func TestOrdered_Terminate(t *testing.T) {
	g := generator.NewOrdered(buildCarbon2(t), 8, 8)
	require.True(t, g.Advance())
	g.Terminate()
	assert.False(t, g.Advance())
}
