// Package heap implements the Fibonacci buddy allocator coupled with a
// mark-and-sweep tracing garbage collector: a single explicitly-owned Heap
// value, never a package singleton, per spec.md §5's single-threaded-core
// Non-goal. Grounded on original_source/Heap_managment.c, restructured into
// idiomatic Go packages the way the teacher splits concerns across files.
package heap

import (
	"fmt"
	"time"

	"github.com/agbru/fibheap/internal/auditlog"
	"github.com/agbru/fibheap/internal/logging"
)

// Stats holds the cumulative counters maintained across the heap's
// lifetime. Grounded on original_source/Heap_managment.c's GCStats struct.
type Stats struct {
	TotalAllocations int
	TotalManualFrees int
	TotalCollections int
	TotalFreed       int
	LastFreedCount   int
}

// Heap is the single owned root value aggregating the block list, the
// cumulative statistics, and the audit log. It is the core's entire mutable
// state, made explicit as a value rather than hidden behind package-level
// globals.
type Heap struct {
	list     *List
	stats    Stats
	audit    *auditlog.Log
	observer Observer
	logger   logging.Logger
	now      func() time.Time
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithObserver attaches an Observer that is notified of every heap event.
func WithObserver(o Observer) Option {
	return func(h *Heap) { h.observer = o }
}

// WithLogger attaches a structured logger.
func WithLogger(l logging.Logger) Option {
	return func(h *Heap) { h.logger = l }
}

// withClock overrides the time source; used by tests for deterministic
// audit-log timestamps.
func withClock(now func() time.Time) Option {
	return func(h *Heap) { h.now = now }
}

// New initializes a heap for the given total budget, emitting one free
// block per Fibonacci number <= budget. Grounded on initializeHeap.
func New(budget int, opts ...Option) *Heap {
	h := &Heap{
		list:     NewList(budget),
		audit:    auditlog.New(),
		observer: NoopObserver{},
		logger:   logging.NewDefaultLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.refreshGauges()
	h.record("Heap initialized with %d blocks (budget %d)", h.list.Len(), h.list.TotalSize())
	return h
}

func (h *Heap) record(format string, args ...any) {
	h.audit.Record(h.now(), fmt.Sprintf(format, args...))
}

// TotalBudget returns the heap's total capacity: the sum of every block's
// size, free or used.
func (h *Heap) TotalBudget() int { return h.list.TotalSize() }

// Stats returns a snapshot of the cumulative counters.
func (h *Heap) Stats() Stats { return h.stats }

// IterateBlocks returns a read-only snapshot of every block in list order.
// Grounded on traverseHeap's linear walk.
func (h *Heap) IterateBlocks() []BlockView {
	blocks := h.list.Blocks()
	views := make([]BlockView, len(blocks))
	for i, b := range blocks {
		views[i] = b.view()
	}
	return views
}

// RecentAudit returns up to n audit entries, most recent first.
func (h *Heap) RecentAudit(n int) []auditlog.Entry {
	return h.audit.Recent(n)
}

// Teardown releases every block's reference slice and drains the audit
// log. Called once on process shutdown.
func (h *Heap) Teardown() {
	for i := 0; i < h.list.Len(); i++ {
		h.list.Block(i).References = nil
	}
	h.audit.Clear()
}
