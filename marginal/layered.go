package marginal

// Layered is a Precalculated marginal that can be re-extended to a
// lower log-probability cutoff without discarding what it has already
// computed: ExtendTo appends the newly admitted configurations to the
// existing tables (spec.md §4.2). Because the underlying Trek always
// emits configurations in non-increasing log-probability order, the
// combined tables stay globally sorted as a byproduct; layer boundaries
// are recorded separately and exposed through NumLayers and LayerBounds.
// generator.Layered does not consult them: it re-scans the whole admitted
// range at each new cutoff and filters out configurations already emitted.
type Layered struct {
	trek *Trek

	// layerEnds[k] is the exclusive end index (into trek's table) of
	// layer k; layerEnds[0] is always 0 before the first ExtendTo call.
	layerEnds []int
}

// NewLayered creates a Layered marginal with no configurations yet
// admitted. Call ExtendTo to admit the first layer.
func NewLayered(base Base, tabSize, hashSize int) *Layered {
	return &Layered{
		trek:      NewTrek(base, tabSize, hashSize),
		layerEnds: []int{0},
	}
}

// ExtendTo grows the marginal to include every configuration with
// log-probability ≥ cutoff, recording a new layer boundary at the
// resulting table length. Calling ExtendTo with a cutoff no lower than
// the current frontier is a no-op beyond recording an (empty) new layer.
func (l *Layered) ExtendTo(cutoff float64) {
	l.trek.EnsureCutoff(cutoff)
	n := l.trek.ConfCount()
	if n > 0 && l.trek.LProb(n-1) < cutoff {
		n--
	}
	l.layerEnds = append(l.layerEnds, n)
}

// NumLayers returns the number of layers admitted so far (excluding the
// initial empty boundary).
func (l *Layered) NumLayers() int { return len(l.layerEnds) - 1 }

// LayerBounds returns the [start, end) index range, into the shared
// tables, of layer k (0-indexed).
func (l *Layered) LayerBounds(k int) (start, end int) {
	return l.layerEnds[k], l.layerEnds[k+1]
}

// ConfCount returns the number of configurations admitted so far, i.e.
// the end of the last recorded layer.
func (l *Layered) ConfCount() int      { return l.layerEnds[len(l.layerEnds)-1] }
func (l *Layered) LProb(i int) float64 { return l.trek.LProb(i) }
func (l *Layered) Mass(i int) float64  { return l.trek.Mass(i) }
func (l *Layered) EProb(i int) float64 { return l.trek.EProb(i) }
func (l *Layered) Conf(i int) []int    { return l.trek.Conf(i) }

// IsotopeCount returns the number of isotopes of the underlying element.
func (l *Layered) IsotopeCount() int { return l.trek.IsotopeCount() }
