package marginal

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/gopherchem/isospec/numeric"
)

// trekItem is one entry of the trek's frontier: a candidate configuration
// not yet emitted, together with its log-probability.
type trekItem struct {
	conf  []int
	lprob float64
}

// trekPQ is a max-heap of *trekItem ordered by lprob descending, the
// same "lazy" priority-queue shape used by container/heap-driven
// shortest-path frontiers elsewhere in this codebase, just maximizing
// instead of minimizing.
type trekPQ []*trekItem

func (pq trekPQ) Len() int            { return len(pq) }
func (pq trekPQ) Less(i, j int) bool  { return pq[i].lprob > pq[j].lprob }
func (pq trekPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *trekPQ) Push(x interface{}) { *pq = append(*pq, x.(*trekItem)) }
func (pq *trekPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// confKey renders a configuration as a stable map key for the trek's
// dedup set. Isotope counts per element are small in practice, so a
// plain string join is fast enough and avoids reflect-based hashing.
func confKey(conf []int) string {
	var sb strings.Builder
	for i, c := range conf {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	return sb.String()
}

// Trek is an on-demand enumeration of one element's configurations in
// strictly decreasing log-probability, seeded at the mode. Advance pops
// the best unseen configuration and pushes its unseen neighbors,
// deduplicating via a hash set (spec.md §4.2).
//
// The emitted configurations accumulate in an appendable table (confs,
// lprobs, masses, eprobs) that backs the stable indices generator.Ordered
// references into a shared Trek across many pop/push cycles.
type Trek struct {
	base Base

	pq      trekPQ
	visited map[string]struct{}

	confs  [][]int
	lprobs []float64
	masses []float64
	eprobs []float64
}

// NewTrek creates a Trek over base, seeded at the mode. tabSize and
// hashSize preallocate the emission table and dedup set respectively
// (spec.md §6's generator constructors expose these as tabSize/hashSize
// tuning knobs).
func NewTrek(base Base, tabSize, hashSize int) *Trek {
	t := &Trek{
		base:    base,
		visited: make(map[string]struct{}, hashSize),
		confs:   make([][]int, 0, tabSize),
		lprobs:  make([]float64, 0, tabSize),
		masses:  make([]float64, 0, tabSize),
		eprobs:  make([]float64, 0, tabSize),
	}

	mode := base.Mode()
	modeLProb := numeric.MultinomialLogProb(mode, base.Probs, base.AtomCount)
	heap.Init(&t.pq)
	heap.Push(&t.pq, &trekItem{conf: mode, lprob: modeLProb})
	t.visited[confKey(mode)] = struct{}{}

	return t
}

// Advance pops the next-best unseen configuration, records it, and
// pushes its unseen neighbors onto the frontier. Returns false once the
// frontier is exhausted (only possible for a finite configuration
// space, i.e. always eventually for a fixed atom count).
func (t *Trek) Advance() bool {
	if t.pq.Len() == 0 {
		return false
	}

	top := heap.Pop(&t.pq).(*trekItem)
	t.confs = append(t.confs, top.conf)
	t.lprobs = append(t.lprobs, top.lprob)
	t.masses = append(t.masses, t.base.ConfMass(top.conf))
	t.eprobs = append(t.eprobs, ConfEProb(top.lprob))

	for _, mv := range t.base.Neighbors(top.conf) {
		key := confKey(mv.Conf)
		if _, seen := t.visited[key]; seen {
			continue
		}
		t.visited[key] = struct{}{}
		heap.Push(&t.pq, &trekItem{conf: mv.Conf, lprob: top.lprob + mv.DeltaL})
	}

	return true
}

// ConfCount returns the number of configurations emitted so far.
func (t *Trek) ConfCount() int { return len(t.confs) }

// EnsureCount runs Advance until at least n configurations have been
// emitted or the frontier is exhausted, returning the count actually
// reached.
func (t *Trek) EnsureCount(n int) int {
	for len(t.confs) < n && t.Advance() {
	}
	return len(t.confs)
}

// EnsureCutoff runs Advance until the last emitted configuration's
// log-probability drops below cutoff (exclusive) or the frontier is
// exhausted.
func (t *Trek) EnsureCutoff(cutoff float64) {
	for {
		n := len(t.lprobs)
		if n > 0 && t.lprobs[n-1] < cutoff {
			return
		}
		if !t.Advance() {
			return
		}
	}
}

func (t *Trek) LProb(i int) float64 { return t.lprobs[i] }
func (t *Trek) Mass(i int) float64  { return t.masses[i] }
func (t *Trek) EProb(i int) float64 { return t.eprobs[i] }
func (t *Trek) Conf(i int) []int    { return t.confs[i] }

// IsotopeCount returns the number of isotopes of the underlying element,
// the width of each configuration vector Conf returns.
func (t *Trek) IsotopeCount() int { return t.base.IsotopeCount }
