package generator

import "github.com/gopherchem/isospec/molecule"

// ThresholdCounter runs the same pruning odometer as Threshold but
// elides mass and linear-probability bookkeeping, for callers that only
// need to size a result buffer before a full run (spec.md §9's Fast/Cntr
// note): it shares thresholdCore with Threshold rather than duplicating
// the odometer.
type ThresholdCounter struct {
	core  *thresholdCore
	count int
}

// NewThresholdCounter consumes d exactly as NewThreshold does, but
// returns the lighter-weight counting generator.
func NewThresholdCounter(d *molecule.Descriptor, threshold float64, absolute bool, tabSize, hashSize int) (*ThresholdCounter, error) {
	precalculated, l, _, _, err := promoteThresholdMarginals(d, threshold, absolute, tabSize, hashSize)
	if err != nil {
		return nil, err
	}

	sorted := make([]sortedMarginal, len(precalculated))
	for k, p := range precalculated {
		sorted[k] = p
	}

	return &ThresholdCounter{core: newThresholdCore(sorted, l)}, nil
}

// Advance runs the odometer one step forward, returning false once
// exhausted.
func (g *ThresholdCounter) Advance() bool {
	if !g.core.advance() {
		return false
	}
	g.count++
	return true
}

// Count returns the number of configurations committed so far.
func (g *ThresholdCounter) Count() int { return g.count }

// LProb returns the current configuration's log-probability, still
// available even though mass/eProb are not computed.
func (g *ThresholdCounter) LProb() float64 { return g.core.lprob() }

func (g *ThresholdCounter) Terminate() { g.core.terminate() }
