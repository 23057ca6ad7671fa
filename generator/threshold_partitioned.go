package generator

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/gopherchem/isospec/molecule"
)

// marginalWindow restricts a sortedMarginal to a contiguous, already-sorted
// sub-range [lo, hi). Since the underlying marginal is sorted by
// non-increasing log-probability, a window is itself sorted, so a
// thresholdCore built over a windowed top-level marginal is exact: it
// explores nothing outside [lo, hi) and misses nothing inside it.
type marginalWindow struct {
	inner  sortedMarginal
	lo, hi int
}

func (w *marginalWindow) ConfCount() int      { return w.hi - w.lo }
func (w *marginalWindow) LProb(i int) float64 { return w.inner.LProb(w.lo + i) }
func (w *marginalWindow) Mass(i int) float64  { return w.inner.Mass(w.lo + i) }
func (w *marginalWindow) EProb(i int) float64 { return w.inner.EProb(w.lo + i) }
func (w *marginalWindow) Conf(i int) []int    { return w.inner.Conf(w.lo + i) }

// PartitionedHit is one configuration emitted by RunThresholdPartitioned.
type PartitionedHit struct {
	LProb float64
	Mass  float64
	EProb float64
	Conf  []int32
}

// RunThresholdPartitioned is spec.md §9's experimental multi-threaded
// threshold partitioner: it shards the outermost (least probable per unit,
// most significant) isotope dimension into workers contiguous windows and
// runs one thresholdCore per shard concurrently, fanning results into a
// single channel. The shards are a partition of the full configuration
// space — disjoint and covering — so no configuration is counted twice or
// skipped, independent of how the goroutines are scheduled.
//
// The returned channel is closed once every shard is exhausted or ctx is
// cancelled. A worker's error (currently only ctx cancellation) aborts the
// remaining shards and is returned once all goroutines have unwound.
func RunThresholdPartitioned(ctx context.Context, d *molecule.Descriptor, threshold float64, absolute bool, tabSize, hashSize, workers int) (<-chan PartitionedHit, func() error) {
	out := make(chan PartitionedHit, workers*4)

	precalculated, l, _, _, err := promoteThresholdMarginals(d, threshold, absolute, tabSize, hashSize)
	if err != nil {
		close(out)
		return out, func() error { return err }
	}

	sorted := make([]sortedMarginal, len(precalculated))
	for k, p := range precalculated {
		sorted[k] = p
	}

	dim := len(sorted)
	if dim == 0 || workers < 1 {
		close(out)
		return out, func() error { return nil }
	}

	top := sorted[dim-1]
	total := top.ConfCount()
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	shard := (total + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if hi > total {
			hi = total
		}
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			shardMarginals := make([]sortedMarginal, dim)
			copy(shardMarginals, sorted)
			shardMarginals[dim-1] = &marginalWindow{inner: top, lo: lo, hi: hi}

			core := newThresholdCore(shardMarginals, l)
			buf := make([]int32, confSignatureLen(shardMarginals))

			for core.advance() {
				select {
				case <-gCtx.Done():
					return gCtx.Err()
				default:
				}

				core.writeConfSignature(buf)
				hit := PartitionedHit{
					LProb: core.lprob(),
					Mass:  core.mass(),
					Conf:  append([]int32(nil), buf...),
				}
				hit.EProb = math.Exp(hit.LProb)

				select {
				case out <- hit:
				case <-gCtx.Done():
					return gCtx.Err()
				}
			}
			return nil
		})
	}

	var waitErr error
	done := make(chan struct{})
	go func() {
		waitErr = g.Wait()
		close(out)
		close(done)
	}()

	wait := func() error {
		<-done
		return waitErr
	}
	return out, wait
}

func confSignatureLen(marginals []sortedMarginal) int {
	n := 0
	for _, m := range marginals {
		if m.ConfCount() > 0 {
			n += len(m.Conf(0))
		}
	}
	return n
}
