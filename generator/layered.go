package generator

import (
	"math"

	"github.com/gopherchem/isospec/marginal"
	"github.com/gopherchem/isospec/molecule"
	"github.com/gopherchem/isospec/numeric"
)

// Layered emits joint configurations in probability layers, each
// roughly a δ-log band below the previous, extending its per-element
// marginal.Layered tables on demand (spec.md §4.4.3).
//
// Layered's per-layer scan reuses thresholdCore, restarted at the new
// layer's cutoff each time a layer is exhausted; a visited set filters
// out configurations already emitted by an earlier (higher-cutoff)
// layer. This trades re-scanning already-explored digit positions for
// a simple, obviously-correct uniqueness guarantee (spec.md §3's I4),
// since ordering within and across layers only needs "earlier layers
// finish before later ones begin" (spec.md §4.4.3), not a specific
// incremental odometer state carried between layers.
type Layered struct {
	layered []*marginal.Layered
	dim     int
	delta   float64

	currentLayerLCutoff float64
	lastLayerLCutoff    float64

	hasTarget  bool
	targetProb float64

	sum *numeric.Summator

	visited map[string]struct{}
	core    *thresholdCore

	terminated bool
}

// NewLayered consumes d and constructs a Layered generator whose first
// layer spans [modeLProb+delta, +Inf). delta must be negative; the
// conventional default is -3.0 (spec.md §6).
func NewLayered(d *molecule.Descriptor, delta float64, tabSize, hashSize int) *Layered {
	modeLProb := d.ModeLProb()
	layered, _, _, _ := d.PromoteLayered(tabSize, hashSize)

	g := &Layered{
		layered:             layered,
		dim:                 len(layered),
		delta:               delta,
		lastLayerLCutoff:    math.Inf(1),
		currentLayerLCutoff: modeLProb + delta,
		sum:                 &numeric.Summator{},
		visited:             make(map[string]struct{}, hashSize),
	}

	for _, l := range g.layered {
		l.ExtendTo(g.currentLayerLCutoff)
	}
	g.rebuildCore()

	return g
}

// SetTargetProbability sets an overall target total linear probability;
// Advance reports exhaustion once the cumulative eProb of emitted
// configurations reaches it (spec.md §4.4.3's final_cutoff).
func (g *Layered) SetTargetProbability(tau float64) {
	g.hasTarget = true
	g.targetProb = tau
}

// TotalEProb returns the compensated running sum of eProb across every
// configuration emitted so far.
func (g *Layered) TotalEProb() float64 { return g.sum.Total() }

func (g *Layered) rebuildCore() {
	sorted := make([]sortedMarginal, g.dim)
	for k, l := range g.layered {
		sorted[k] = l
	}
	g.core = newThresholdCore(sorted, g.currentLayerLCutoff)
}

// extendToNextLayer grows every element's table to a new, lower cutoff
// and rebuilds the odometer over the enlarged tables. Returns false if
// no element's table grew, meaning the entire joint space is already
// covered and no further layer can add anything.
func (g *Layered) extendToNextLayer() bool {
	before := 0
	for _, l := range g.layered {
		before += l.ConfCount()
	}

	g.lastLayerLCutoff = g.currentLayerLCutoff
	g.currentLayerLCutoff += g.delta
	for _, l := range g.layered {
		l.ExtendTo(g.currentLayerLCutoff)
	}

	after := 0
	for _, l := range g.layered {
		after += l.ConfCount()
	}
	if after == before {
		return false
	}

	g.rebuildCore()
	return true
}

// Advance emits the next unseen configuration, extending to further
// layers as needed. Returns false once the requested target
// probability is reached (if set) or the whole joint space has been
// exhausted.
func (g *Layered) Advance() bool {
	if g.terminated {
		return false
	}
	if g.hasTarget && g.sum.Total() >= g.targetProb {
		g.terminated = true
		return false
	}

	for {
		if !g.core.advance() {
			if !g.extendToNextLayer() {
				g.terminated = true
				return false
			}
			continue
		}

		key := idxKey(g.core.counter)
		if _, seen := g.visited[key]; seen {
			continue
		}
		g.visited[key] = struct{}{}

		g.sum.Add(math.Exp(g.core.lprob()))
		return true
	}
}

func (g *Layered) LProb() float64 { return g.core.lprob() }
func (g *Layered) Mass() float64  { return g.core.mass() }
func (g *Layered) EProb() float64 { return math.Exp(g.core.lprob()) }

func (g *Layered) WriteConfSignature(buf []int32) { g.core.writeConfSignature(buf) }
func (g *Layered) Terminate()                     { g.terminated = true }
