package marginal

import "math"

// Move describes a single one-atom move between two isotopes: the
// resulting configuration and the change in log-probability it causes
// (spec.md §4.2).
type Move struct {
	Conf   []int
	DeltaL float64
}

// Neighbors returns every configuration reachable from conf by moving
// exactly one atom from an isotope with a positive count to a different
// isotope: for every (i, j) with i≠j and conf[i] > 0, decrement conf[i]
// and increment conf[j].
//
// DeltaL is log(c[i]/(c[j]+1)) + log(p[j]/p[i]), the exact change in
// multinomial log-probability that move induces (derived directly from
// the multinomial coefficient and weighted-sum terms, spec.md §4.2).
//
// Complexity: O(isotopeCount²); the returned slice holds newly allocated
// configuration vectors, safe to retain.
func (b Base) Neighbors(conf []int) []Move {
	moves := make([]Move, 0, b.IsotopeCount*(b.IsotopeCount-1))
	for i := 0; i < b.IsotopeCount; i++ {
		if conf[i] <= 0 {
			continue
		}
		for j := 0; j < b.IsotopeCount; j++ {
			if i == j {
				continue
			}
			next := append([]int(nil), conf...)
			next[i]--
			next[j]++
			delta := math.Log(float64(conf[i])/float64(conf[j]+1)) + math.Log(b.Probs[j]/b.Probs[i])
			moves = append(moves, Move{Conf: next, DeltaL: delta})
		}
	}
	return moves
}
