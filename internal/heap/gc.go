package heap

import (
	"context"
	"time"

	"github.com/agbru/fibheap/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Collect runs one mark-and-sweep cycle: marks every block transitively
// reachable from a root, reclaims every Used block left unmarked, then (if
// anything was reclaimed) runs the merge pass. Marks are cleared during
// sweep, not before it, per spec.md §4.4. Grounded on garbageCollect.
func (h *Heap) Collect() int {
	return h.CollectContext(context.Background())
}

// CollectContext is Collect with an explicit context, so a caller (the HTTP
// transport, the scenario runner) can attach the cycle's spans to its own
// trace. Grounded on the tracer usage in FibGo/internal/fibonacci/calculator.go,
// generalized from a single computation span to a mark/sweep pair of child
// spans.
func (h *Heap) CollectContext(ctx context.Context) int {
	tracer := otel.Tracer("fibheap/heap")
	ctx, span := tracer.Start(ctx, "heap.collect")
	defer span.End()

	start := time.Now()
	roots := h.mark(ctx, tracer)
	freed := h.sweep(ctx, tracer)

	if freed > 0 {
		h.list.MergeAdjacent()
	}

	h.stats.TotalCollections++
	h.stats.TotalFreed += freed
	h.stats.LastFreedCount = freed
	collectionsTotal.Inc()
	blocksFreedTotal.Add(float64(freed))
	collectDuration.Observe(time.Since(start).Seconds())
	h.refreshGauges()

	span.SetAttributes(attribute.Int("roots", roots), attribute.Int("freed", freed))
	h.observer.OnCollect(freed, h.stats.TotalCollections)
	h.logger.Info("garbage collection complete",
		logging.Int("roots", roots), logging.Int("freed", freed),
		logging.Int("total_collections", h.stats.TotalCollections))
	h.record("GC #%d completed - freed %d block(s)", h.stats.TotalCollections, freed)

	return freed
}

// mark walks the reference graph depth-first from every root block, using
// an explicit worklist rather than original_source's recursive markBlock,
// so deep reference chains do not grow the call stack. Children are pushed
// in reverse order so
// the worklist, used as a stack, pops them in the same order a recursive
// depth-first walk would visit them.
func (h *Heap) mark(ctx context.Context, tracer trace.Tracer) int {
	_, span := tracer.Start(ctx, "heap.collect.mark")
	defer span.End()

	roots := 0
	var worklist []int
	for i := 0; i < h.list.Len(); i++ {
		b := h.list.Block(i)
		if b.State == Used && b.IsRoot {
			roots++
			worklist = append(worklist, i)
		}
	}

	for len(worklist) > 0 {
		i := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		b := h.list.Block(i)
		if b.State != Used || b.mark {
			continue
		}
		b.mark = true

		for j := len(b.References) - 1; j >= 0; j-- {
			target, idx := h.list.FindUsed(b.References[j])
			if target == nil || target.mark {
				continue
			}
			worklist = append(worklist, idx)
		}
	}

	span.SetAttributes(attribute.Int("roots", roots))
	return roots
}

// sweep reclaims every Used block left unmarked by mark, clearing the
// transient mark bit on every block (marked or not) as it goes. Grounded on
// sweepBlocks.
func (h *Heap) sweep(ctx context.Context, tracer trace.Tracer) int {
	_, span := tracer.Start(ctx, "heap.collect.sweep")
	defer span.End()

	freed := 0
	for i := 0; i < h.list.Len(); i++ {
		b := h.list.Block(i)
		if b.State == Used && !b.mark {
			freed++
			b.State = Free
			b.References = nil
			b.IsRoot = false
			b.Name = ""
			b.AllocatedSize = 0
		}
		b.mark = false
	}

	span.SetAttributes(attribute.Int("freed", freed))
	return freed
}
