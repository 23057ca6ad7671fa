package molecule

import (
	"fmt"

	"github.com/gopherchem/isospec/formula"
	"github.com/gopherchem/isospec/marginal"
	"github.com/gopherchem/isospec/ptable"
)

// Descriptor is the joint isotopologue descriptor for a molecule: dim
// elements, each with its own isotope count, atom count, and
// marginal.Base distribution, plus the derived joint scalars a
// generator needs before it starts streaming (spec.md §4.3).
//
// A zero-value Descriptor is not usable; construct one with
// NewFromArrays or NewFromFormula.
type Descriptor struct {
	dim            int
	isotopeNumbers []int
	atomCounts     []int
	elements       []marginal.Base

	modeLProb    float64
	lightestMass float64
	heaviestMass float64

	moved bool
}

// NewFromArrays constructs a Descriptor directly from per-element
// isotope numbers, atom counts, masses, and probabilities, mirroring
// the Iso(dim, isotope_numbers, atom_counts, masses, probs) constructor
// of spec.md §6.
//
// Complexity: O(Σ isotope_numbers[k]).
func NewFromArrays(isotopeNumbers, atomCounts []int, masses, probs [][]float64) (*Descriptor, error) {
	dim := len(isotopeNumbers)
	if dim < 1 {
		return nil, ErrNoElements
	}
	if len(atomCounts) != dim || len(masses) != dim || len(probs) != dim {
		return nil, ErrDimMismatch
	}

	elements := make([]marginal.Base, dim)
	for k := 0; k < dim; k++ {
		if isotopeNumbers[k] != len(masses[k]) || isotopeNumbers[k] != len(probs[k]) {
			return nil, fmt.Errorf("%w: element %d: isotope_numbers does not match masses/probabilities length", ErrDimMismatch, k)
		}
		base, err := marginal.NewBase(atomCounts[k], masses[k], probs[k])
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrInvalidDescriptor, k, err)
		}
		elements[k] = base
	}

	return newDescriptor(isotopeNumbers, atomCounts, elements), nil
}

// NewFromFormula constructs a Descriptor from a chemical formula string
// such as "C2H6O", delegating tokenization to package formula and
// isotope data lookup to package ptable (spec.md §4.3, §6).
func NewFromFormula(s string) (*Descriptor, error) {
	terms, err := formula.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if len(terms) < 1 {
		return nil, ErrNoElements
	}

	dim := len(terms)
	isotopeNumbers := make([]int, dim)
	atomCounts := make([]int, dim)
	masses := make([][]float64, dim)
	probs := make([][]float64, dim)

	for i, term := range terms {
		el, ok := ptable.Lookup(term.Symbol)
		if !ok {
			return nil, fmt.Errorf("%w: unknown element %q", ErrInvalidDescriptor, term.Symbol)
		}

		isotopeNumbers[i] = len(el.Isotopes)
		atomCounts[i] = term.Count
		masses[i] = make([]float64, len(el.Isotopes))
		probs[i] = make([]float64, len(el.Isotopes))
		for j, iso := range el.Isotopes {
			masses[i][j] = iso.MassDa
			probs[i][j] = iso.Abundance
		}
	}

	return NewFromArrays(isotopeNumbers, atomCounts, masses, probs)
}

// newDescriptor assembles a Descriptor from already-validated elements,
// computing the joint mode log-probability and lightest/heaviest peak
// masses eagerly (spec.md §4.3).
func newDescriptor(isotopeNumbers, atomCounts []int, elements []marginal.Base) *Descriptor {
	d := &Descriptor{
		dim:            len(elements),
		isotopeNumbers: append([]int(nil), isotopeNumbers...),
		atomCounts:     append([]int(nil), atomCounts...),
		elements:       elements,
	}

	for _, e := range elements {
		d.modeLProb += e.ModeLProb()
		lo, hi := lightestHeaviestIsotopeMass(e)
		d.lightestMass += float64(e.AtomCount) * lo
		d.heaviestMass += float64(e.AtomCount) * hi
	}

	return d
}

// lightestHeaviestIsotopeMass returns the min/max per-atom isotope mass
// of an element, used to derive the all-lightest-isotope and
// all-heaviest-isotope joint peak masses.
func lightestHeaviestIsotopeMass(e marginal.Base) (lo, hi float64) {
	lo, hi = e.Masses[0], e.Masses[0]
	for _, m := range e.Masses[1:] {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	return lo, hi
}

func (d *Descriptor) checkNotMoved() {
	if d.moved {
		panic(movedDescriptorMessage)
	}
}

// Dim returns the number of elements in the descriptor.
func (d *Descriptor) Dim() int {
	d.checkNotMoved()
	return d.dim
}

// IsotopeNumbers returns a copy of the per-element isotope counts.
func (d *Descriptor) IsotopeNumbers() []int {
	d.checkNotMoved()
	return append([]int(nil), d.isotopeNumbers...)
}

// AtomCounts returns a copy of the per-element atom counts.
func (d *Descriptor) AtomCounts() []int {
	d.checkNotMoved()
	return append([]int(nil), d.atomCounts...)
}

// ModeLProb returns the joint mode's log-probability, the sum of each
// element's independent mode log-probability.
func (d *Descriptor) ModeLProb() float64 {
	d.checkNotMoved()
	return d.modeLProb
}

// LightestPeakMass returns the mass of the all-lightest-isotope
// configuration.
func (d *Descriptor) LightestPeakMass() float64 {
	d.checkNotMoved()
	return d.lightestMass
}

// HeaviestPeakMass returns the mass of the all-heaviest-isotope
// configuration.
func (d *Descriptor) HeaviestPeakMass() float64 {
	d.checkNotMoved()
	return d.heaviestMass
}

// ElementModeLProbs returns each element's own mode log-probability, in
// element order. Used to derive per-element cutoffs for the threshold
// generators (spec.md §4.4.2): a joint configuration can
// only meet a joint cutoff L if element k's contribution is at least
// L minus the best possible contribution of every other element (each
// at its own mode).
func (d *Descriptor) ElementModeLProbs() []float64 {
	d.checkNotMoved()
	out := make([]float64, len(d.elements))
	for i, e := range d.elements {
		out[i] = e.ModeLProb()
	}
	return out
}

// Moved reports whether the descriptor has already been moved or
// consumed and is therefore inert.
func (d *Descriptor) Moved() bool {
	return d.moved
}
