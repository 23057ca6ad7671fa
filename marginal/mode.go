package marginal

import (
	"math"

	"github.com/gopherchem/isospec/numeric"
)

// Mode returns the element's most probable configuration, computed by
// the allocate-by-largest-remainder rule of spec.md §3: start every
// isotope at floor(atomCount·p[i]), then hand out the remaining atoms
// one at a time to whichever isotope's marginal log-probability increase
// is currently largest, breaking ties by lowest isotope index.
//
// Complexity: O(atomCount·isotopeCount) in the worst case (remaining
// atoms are handed out one at a time); isotopeCount is small in
// practice (rarely more than a handful of stable isotopes per element).
func (b Base) Mode() []int {
	conf := make([]int, b.IsotopeCount)
	var allocated int
	for i := 0; i < b.IsotopeCount; i++ {
		conf[i] = int(math.Floor(float64(b.AtomCount) * b.Probs[i]))
		allocated += conf[i]
	}

	remaining := b.AtomCount - allocated
	for step := 0; step < remaining; step++ {
		best := 0
		bestGain := math.Inf(-1)
		for i := 0; i < b.IsotopeCount; i++ {
			// Marginal gain in log-probability from bumping conf[i] to conf[i]+1:
			// the multinomial coefficient changes by -log(conf[i]+1), plus log(p[i]).
			gain := math.Log(b.Probs[i]) - math.Log(float64(conf[i]+1))
			if gain > bestGain {
				bestGain = gain
				best = i
			}
		}
		conf[best]++
	}

	return conf
}

// ModeLProb returns the log-probability of Mode(), the element-level
// analog of molecule.Descriptor's modeLProb.
func (b Base) ModeLProb() float64 {
	return numeric.MultinomialLogProb(b.Mode(), b.Probs, b.AtomCount)
}
