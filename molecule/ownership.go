package molecule

import "github.com/gopherchem/isospec/marginal"

// Clone returns a full copy of the descriptor: every element marginal is
// deep-copied along with the scalar fields, so mutations of either
// descriptor's promoted marginals (once each is separately consumed by
// a generator) cannot observe the other's state.
func (d *Descriptor) Clone() *Descriptor {
	d.checkNotMoved()

	elements := make([]marginal.Base, len(d.elements))
	for i, e := range d.elements {
		// marginal.NewBase copies its input slices, so this reconstructs
		// an independent Base even though Base itself has no exported
		// copy constructor.
		clone, err := marginal.NewBase(e.AtomCount, e.Masses, e.Probs)
		if err != nil {
			// e was already validated when d was constructed; re-validating
			// identical values cannot fail.
			panic("molecule: unreachable: cloning an already-valid element failed: " + err.Error())
		}
		elements[i] = clone
	}

	return &Descriptor{
		dim:            d.dim,
		isotopeNumbers: append([]int(nil), d.isotopeNumbers...),
		atomCounts:     append([]int(nil), d.atomCounts...),
		elements:       elements,
		modeLProb:      d.modeLProb,
		lightestMass:   d.lightestMass,
		heaviestMass:   d.heaviestMass,
	}
}

// CloneShallow returns a copy of the descriptor's scalar fields —
// dim, isotope numbers, atom counts, modeLProb, lightest/heaviest peak
// mass — without duplicating the element marginals themselves
// (spec.md §4.3). marginal.Base is immutable once constructed, so
// sharing its backing arrays between the original and the shallow copy
// is safe; the two descriptors may still be independently Moved or
// Consumed, since each holds its own slice header over the shared data.
func (d *Descriptor) CloneShallow() *Descriptor {
	d.checkNotMoved()

	return &Descriptor{
		dim:            d.dim,
		isotopeNumbers: append([]int(nil), d.isotopeNumbers...),
		atomCounts:     append([]int(nil), d.atomCounts...),
		elements:       d.elements,
		modeLProb:      d.modeLProb,
		lightestMass:   d.lightestMass,
		heaviestMass:   d.heaviestMass,
	}
}

// Move transfers ownership of the descriptor's state to a newly
// returned Descriptor and marks the receiver inert (spec.md §4.3):
// after Move, any accessor call on d panics with
// MisuseOfMovedDescriptor (spec.md §7).
func (d *Descriptor) Move() *Descriptor {
	d.checkNotMoved()

	moved := &Descriptor{
		dim:            d.dim,
		isotopeNumbers: d.isotopeNumbers,
		atomCounts:     d.atomCounts,
		elements:       d.elements,
		modeLProb:      d.modeLProb,
		lightestMass:   d.lightestMass,
		heaviestMass:   d.heaviestMass,
	}

	d.moved = true
	d.isotopeNumbers = nil
	d.atomCounts = nil
	d.elements = nil

	return moved
}

// Consume marks the descriptor inert and returns its owned element
// marginals and derived scalars to the caller. It is the primitive
// generator constructors use to take ownership of a descriptor
// (spec.md §4.5: "a generator asks the descriptor for the promoted
// variant it needs ... and takes ownership").
func (d *Descriptor) Consume() (elements []marginal.Base, modeLProb, lightestMass, heaviestMass float64) {
	d.checkNotMoved()

	elements = d.elements
	modeLProb = d.modeLProb
	lightestMass = d.lightestMass
	heaviestMass = d.heaviestMass

	d.moved = true
	d.elements = nil

	return elements, modeLProb, lightestMass, heaviestMass
}

// PromoteTreks consumes the descriptor and returns one marginal.Trek per
// element, each seeded at its element's mode — the marginal shape
// generator.Ordered is built on (spec.md §4.4.1, §4.5).
func (d *Descriptor) PromoteTreks(tabSize, hashSize int) (treks []*marginal.Trek, modeLProb, lightestMass, heaviestMass float64) {
	elements, modeLProb, lightestMass, heaviestMass := d.Consume()

	treks = make([]*marginal.Trek, len(elements))
	for i, e := range elements {
		treks[i] = marginal.NewTrek(e, tabSize, hashSize)
	}
	return treks, modeLProb, lightestMass, heaviestMass
}

// PromotePrecalculated consumes the descriptor and returns one
// marginal.Precalculated per element, each extended down to its
// corresponding entry in cutoffs (len(cutoffs) must equal Dim()) — the
// marginal shape generator.Threshold is built on (spec.md §4.4.2, §4.5).
func (d *Descriptor) PromotePrecalculated(cutoffs []float64, tabSize, hashSize int) (marginals []*marginal.Precalculated, modeLProb, lightestMass, heaviestMass float64) {
	elements, modeLProb, lightestMass, heaviestMass := d.Consume()

	marginals = make([]*marginal.Precalculated, len(elements))
	for i, e := range elements {
		marginals[i] = marginal.NewPrecalculated(e, cutoffs[i], tabSize, hashSize)
	}
	return marginals, modeLProb, lightestMass, heaviestMass
}

// PromoteLayered consumes the descriptor and returns one marginal.Layered
// per element, none yet extended to any cutoff — the marginal shape
// generator.Layered is built on (spec.md §4.4.3, §4.5).
func (d *Descriptor) PromoteLayered(tabSize, hashSize int) (layered []*marginal.Layered, modeLProb, lightestMass, heaviestMass float64) {
	elements, modeLProb, lightestMass, heaviestMass := d.Consume()

	layered = make([]*marginal.Layered, len(elements))
	for i, e := range elements {
		layered[i] = marginal.NewLayered(e, tabSize, hashSize)
	}
	return layered, modeLProb, lightestMass, heaviestMass
}
