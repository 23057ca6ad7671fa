package generator

import (
	"math"

	"github.com/gopherchem/isospec/marginal"
	"github.com/gopherchem/isospec/molecule"
)

// promoteThresholdMarginals derives the joint cutoff L and the
// per-element cutoffs of spec.md §4.4.2, then consumes d to obtain one
// Precalculated marginal per element extended to its own cutoff.
func promoteThresholdMarginals(d *molecule.Descriptor, threshold float64, absolute bool, tabSize, hashSize int) (marginals []*marginal.Precalculated, l, lightestMass, heaviestMass float64, err error) {
	if threshold <= 0 {
		return nil, 0, 0, 0, ErrNonPositiveThreshold
	}

	modeLProb := d.ModeLProb()
	elementModeLProbs := d.ElementModeLProbs()
	dim := d.Dim()

	l = math.Log(threshold)
	if !absolute {
		l += modeLProb
	}

	// Any joint configuration meeting L must have each element k
	// contribute at least L minus the best-case (mode) contribution of
	// every other element.
	cutoffs := make([]float64, dim)
	for k := 0; k < dim; k++ {
		cutoffs[k] = l - (modeLProb - elementModeLProbs[k])
	}

	marginals, _, lightestMass, heaviestMass = d.PromotePrecalculated(cutoffs, tabSize, hashSize)
	return marginals, l, lightestMass, heaviestMass, nil
}

// Threshold emits every joint configuration with log-probability ≥ a
// cutoff L, in unspecified order (spec.md §4.4.2).
type Threshold struct {
	core      *thresholdCore
	marginals []*marginal.Precalculated

	lightestMass float64
	heaviestMass float64
}

// NewThreshold consumes d and constructs a Threshold generator. If
// absolute, L = log(threshold); otherwise L = log(threshold) + modeLProb.
func NewThreshold(d *molecule.Descriptor, threshold float64, absolute bool, tabSize, hashSize int) (*Threshold, error) {
	precalculated, l, lightestMass, heaviestMass, err := promoteThresholdMarginals(d, threshold, absolute, tabSize, hashSize)
	if err != nil {
		return nil, err
	}

	sorted := make([]sortedMarginal, len(precalculated))
	for k, p := range precalculated {
		sorted[k] = p
	}

	return &Threshold{
		core:         newThresholdCore(sorted, l),
		marginals:    precalculated,
		lightestMass: lightestMass,
		heaviestMass: heaviestMass,
	}, nil
}

func (g *Threshold) Advance() bool { return g.core.advance() }
func (g *Threshold) LProb() float64 { return g.core.lprob() }
func (g *Threshold) Mass() float64  { return g.core.mass() }
func (g *Threshold) EProb() float64 { return math.Exp(g.core.lprob()) }

func (g *Threshold) WriteConfSignature(buf []int32) { g.core.writeConfSignature(buf) }
func (g *Threshold) Terminate()                     { g.core.terminate() }

// LightestPeakMass and HeaviestPeakMass forward the bounds computed by
// the descriptor this generator consumed.
func (g *Threshold) LightestPeakMass() float64 { return g.lightestMass }
func (g *Threshold) HeaviestPeakMass() float64 { return g.heaviestMass }
