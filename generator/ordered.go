package generator

import (
	"container/heap"
	"fmt"
	"math"
	"strings"

	"github.com/gopherchem/isospec/marginal"
	"github.com/gopherchem/isospec/molecule"
)

// jointItem is one candidate joint configuration on Ordered's frontier:
// idx[k] is the position into element k's Trek table.
type jointItem struct {
	idx   []int
	lprob float64
}

// jointHeap is a max-heap of *jointItem ordered by lprob descending,
// the same lazy "push duplicates, dedup via visited set" shape used by
// marginal.Trek's own frontier, one level up: here the priority queue
// ranges over joint (per-element index vector) configurations instead
// of per-element ones.
type jointHeap []*jointItem

func (h jointHeap) Len() int            { return len(h) }
func (h jointHeap) Less(i, j int) bool  { return h[i].lprob > h[j].lprob }
func (h jointHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *jointHeap) Push(x interface{}) { *h = append(*h, x.(*jointItem)) }
func (h *jointHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

func idxKey(idx []int) string {
	var sb strings.Builder
	for i, v := range idx {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}

// Ordered emits joint configurations in strictly decreasing
// log-probability (spec.md §4.4.1). Each element's Trek grows on demand
// as the priority queue requests positions beyond its current frontier.
type Ordered struct {
	treks []*marginal.Trek
	dim   int

	pq      jointHeap
	visited map[string]struct{}

	current    *jointItem
	terminated bool
}

// NewOrdered consumes d and constructs an Ordered generator seeded at
// the joint mode.
func NewOrdered(d *molecule.Descriptor, tabSize, hashSize int) *Ordered {
	treks, _, _, _ := d.PromoteTreks(tabSize, hashSize)
	dim := len(treks)

	g := &Ordered{
		treks:   treks,
		dim:     dim,
		visited: make(map[string]struct{}, hashSize),
	}

	initial := make([]int, dim)
	var lprob float64
	for k, t := range treks {
		t.EnsureCount(1)
		lprob += t.LProb(0)
		initial[k] = 0
	}

	heap.Init(&g.pq)
	heap.Push(&g.pq, &jointItem{idx: initial, lprob: lprob})
	g.visited[idxKey(initial)] = struct{}{}

	return g
}

// Advance pops the next-best unseen joint configuration and pushes its
// unseen one-element-advanced neighbors.
func (g *Ordered) Advance() bool {
	if g.terminated || g.pq.Len() == 0 {
		return false
	}

	top := heap.Pop(&g.pq).(*jointItem)
	g.current = top

	for k := 0; k < g.dim; k++ {
		nextIdx := append([]int(nil), top.idx...)
		nextIdx[k]++

		if g.treks[k].EnsureCount(nextIdx[k]+1) <= nextIdx[k] {
			continue // element k's trek is exhausted at this position
		}

		key := idxKey(nextIdx)
		if _, seen := g.visited[key]; seen {
			continue
		}
		g.visited[key] = struct{}{}

		nextLProb := top.lprob - g.treks[k].LProb(top.idx[k]) + g.treks[k].LProb(nextIdx[k])
		heap.Push(&g.pq, &jointItem{idx: nextIdx, lprob: nextLProb})
	}

	return true
}

func (g *Ordered) LProb() float64 { return g.current.lprob }

func (g *Ordered) Mass() float64 {
	var m float64
	for k := 0; k < g.dim; k++ {
		m += g.treks[k].Mass(g.current.idx[k])
	}
	return m
}

func (g *Ordered) EProb() float64 { return math.Exp(g.current.lprob) }

func (g *Ordered) WriteConfSignature(buf []int32) {
	pos := 0
	for k := 0; k < g.dim; k++ {
		for _, count := range g.treks[k].Conf(g.current.idx[k]) {
			buf[pos] = int32(count)
			pos++
		}
	}
}

func (g *Ordered) Terminate() { g.terminated = true }
