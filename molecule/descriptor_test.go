package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/molecule"
)

func buildCarbon2Descriptor(t *testing.T) *molecule.Descriptor {
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

func TestNewFromArrays_ComputesJointScalars(t *testing.T) {
	d := buildCarbon2Descriptor(t)

	assert.Equal(t, 1, d.Dim())
	assert.InDelta(t, 0.0, d.ModeLProb(), 0.3) // mode config [2,0] is near-certain
	assert.InDelta(t, 24.0, d.LightestPeakMass(), 1e-9)
	assert.InDelta(t, 26.00671, d.HeaviestPeakMass(), 1e-4)
}

func TestNewFromArrays_MultiElement(t *testing.T) {
	// A toy CH4-shaped descriptor: one carbon, four hydrogens.
	d, err := molecule.NewFromArrays(
		[]int{2, 2},
		[]int{1, 4},
		[][]float64{{12.0, 13.003355}, {1.007825, 2.014102}},
		[][]float64{{.9893, .0107}, {.999885, .000115}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Dim())
	assert.Equal(t, []int{1, 4}, d.AtomCounts())
	assert.Equal(t, []int{2, 2}, d.IsotopeNumbers())
	// Lightest peak: all-12C, all-1H.
	assert.InDelta(t, 12.0+4*1.007825, d.LightestPeakMass(), 1e-6)
}

func TestNewFromArrays_RejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name    string
		isoNums []int
		atoms   []int
		masses  [][]float64
		probs   [][]float64
		wantErr error
	}{
		{"empty", nil, nil, nil, nil, molecule.ErrNoElements},
		{
			"length mismatch",
			[]int{2}, []int{1, 2}, [][]float64{{1, 2}}, [][]float64{{1, 2}},
			molecule.ErrDimMismatch,
		},
		{
			"invalid element",
			[]int{2}, []int{-1}, [][]float64{{1, 2}}, [][]float64{{.5, .5}},
			molecule.ErrInvalidDescriptor,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := molecule.NewFromArrays(tc.isoNums, tc.atoms, tc.masses, tc.probs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewFromFormula_BuildsMultiElementDescriptor(t *testing.T) {
	d, err := molecule.NewFromFormula("C2H6O")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Dim())
	assert.Equal(t, []int{2, 6, 1}, d.AtomCounts())
}

func TestNewFromFormula_RejectsUnknownElement(t *testing.T) {
	_, err := molecule.NewFromFormula("Xx2")
	require.Error(t, err)
	assert.ErrorIs(t, err, molecule.ErrInvalidDescriptor)
}

func TestDescriptor_MovedAccessorsPanic(t *testing.T) {
	d := buildCarbon2Descriptor(t)
	_ = d.Move()

	assert.Panics(t, func() { d.Dim() })
	assert.Panics(t, func() { d.ModeLProb() })
	assert.Panics(t, func() { d.Move() })
	assert.Panics(t, func() { d.Consume() })
}

func TestDescriptor_ConsumeReturnsElementsAndScalars(t *testing.T) {
	d := buildCarbon2Descriptor(t)
	wantLightest := d.LightestPeakMass()
	wantModeLProb := d.ModeLProb()

	elements, modeLProb, lightest, heaviest := d.Consume()

	require.Len(t, elements, 1)
	assert.Equal(t, 2, elements[0].AtomCount)
	assert.Equal(t, wantLightest, lightest)
	assert.Equal(t, wantModeLProb, modeLProb)
	assert.Greater(t, heaviest, lightest)

	assert.True(t, d.Moved())
	assert.Panics(t, func() { d.Dim() })
}
