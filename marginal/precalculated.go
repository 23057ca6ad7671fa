package marginal

// Precalculated is a one-shot, contiguous enumeration of an element's
// configurations down to a fixed log-probability cutoff, sorted by
// decreasing log-probability, with masses/log-probabilities/linear
// probabilities kept in parallel arrays for cache-friendly hot-loop
// access (spec.md §4.2).
type Precalculated struct {
	base Base

	confs  [][]int
	lprobs []float64
	masses []float64
	eprobs []float64
}

// NewPrecalculated runs a Trek to completion down to cutoff (inclusive)
// and freezes the result.
func NewPrecalculated(base Base, cutoff float64, tabSize, hashSize int) *Precalculated {
	trek := NewTrek(base, tabSize, hashSize)
	trek.EnsureCutoff(cutoff)

	n := trek.ConfCount()
	if n > 0 && trek.LProb(n-1) < cutoff {
		n--
	}

	p := &Precalculated{
		base:   base,
		confs:  make([][]int, n),
		lprobs: make([]float64, n),
		masses: make([]float64, n),
		eprobs: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p.confs[i] = trek.Conf(i)
		p.lprobs[i] = trek.LProb(i)
		p.masses[i] = trek.Mass(i)
		p.eprobs[i] = trek.EProb(i)
	}

	return p
}

func (p *Precalculated) ConfCount() int      { return len(p.confs) }
func (p *Precalculated) LProb(i int) float64 { return p.lprobs[i] }
func (p *Precalculated) Mass(i int) float64  { return p.masses[i] }
func (p *Precalculated) EProb(i int) float64 { return p.eprobs[i] }
func (p *Precalculated) Conf(i int) []int    { return p.confs[i] }

// LProbsPtr, MassesPtr and EProbsPtr return handles to the contiguous
// backing arrays, for callers that index them directly. generator.Threshold
// does not use them: its odometer reads each entry through the LProb,
// Mass and Conf methods.
func (p *Precalculated) LProbsPtr() []float64 { return p.lprobs }
func (p *Precalculated) MassesPtr() []float64 { return p.masses }
func (p *Precalculated) EProbsPtr() []float64 { return p.eprobs }

// IsotopeCount returns the number of isotopes of the underlying element.
func (p *Precalculated) IsotopeCount() int { return p.base.IsotopeCount }
