// Command fibheap-scenarios runs the six literal scenarios from the
// allocator/collector specification as a repeatable check, each against its
// own freshly-initialized heap. Grounded on cmd/generate-golden/main.go's
// standalone-tool shape.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibheap/internal/heap"
)

type scenario struct {
	name string
	run  func() error
}

func main() {
	scenarios := []scenario{
		{"split-then-merge-round-trip", scenarioSplitThenMergeRoundTrip},
		{"best-fit-tie-break", scenarioBestFitTieBreak},
		{"split-chain", scenarioSplitChain},
		{"gc-reclaims-cycle", scenarioGCReclaimsCycle},
		{"gc-triggered-by-allocation", scenarioGCTriggeredByAllocation},
		{"merge-on-free", scenarioMergeOnFree},
	}

	results := make([]error, len(scenarios))
	g, _ := errgroup.WithContext(context.Background())
	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			results[i] = s.run()
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, s := range scenarios {
		if results[i] != nil {
			failed++
			fmt.Printf("FAIL %-30s %v\n", s.name, results[i])
			continue
		}
		fmt.Printf("PASS %-30s\n", s.name)
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d scenarios failed\n", failed, len(scenarios))
		os.Exit(1)
	}
	fmt.Printf("\nall %d scenarios passed\n", len(scenarios))
}

func blockSizeMultiset(h *heap.Heap) []int {
	var sizes []int
	for _, b := range h.IterateBlocks() {
		sizes = append(sizes, b.Size)
	}
	sort.Ints(sizes)
	return sizes
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scenarioSplitThenMergeRoundTrip: allocate a size-2 block then free it;
// the block-size multiset must return to its initial shape.
func scenarioSplitThenMergeRoundTrip() error {
	h := heap.New(16000)
	defer h.Teardown()

	before := blockSizeMultiset(h)

	if _, err := h.Allocate("x", 1, false); err != nil {
		return fmt.Errorf("allocate: %w", err)
	}
	if err := h.Free("x"); err != nil {
		return fmt.Errorf("free: %w", err)
	}

	after := blockSizeMultiset(h)
	if !equalIntSlices(before, after) {
		return fmt.Errorf("expected block-size multiset %v, got %v", before, after)
	}
	return nil
}

// scenarioBestFitTieBreak: allocating size 4 out of {2,3,5,8,13} must land
// on the size-5 block without splitting.
func scenarioBestFitTieBreak() error {
	h := heap.New(30)
	defer h.Teardown()

	block, err := h.Allocate("a", 4, false)
	if err != nil {
		return fmt.Errorf("allocate: %w", err)
	}
	if block.Size != 5 {
		return fmt.Errorf("expected a used block of size 5, got %d", block.Size)
	}
	return nil
}

// scenarioSplitChain: a second size-4 allocation after the first must split
// the size-8 block into a used size-5 block and a new size-3 free block.
func scenarioSplitChain() error {
	h := heap.New(30)
	defer h.Teardown()

	if _, err := h.Allocate("a", 4, false); err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	b, err := h.Allocate("b", 4, false)
	if err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	if b.Size != 5 {
		return fmt.Errorf("expected b to land on a used block of size 5, got %d", b.Size)
	}

	foundFreeThree := false
	for _, blk := range h.IterateBlocks() {
		if blk.State == heap.Free && blk.Size == 3 {
			foundFreeThree = true
		}
	}
	if !foundFreeThree {
		return fmt.Errorf("expected a new free block of size 3 after the split")
	}
	return nil
}

// scenarioGCReclaimsCycle: a root-unreachable reference cycle between two
// non-root blocks must be reclaimed, while the root survives.
func scenarioGCReclaimsCycle() error {
	h := heap.New(30)
	defer h.Teardown()

	if _, err := h.Allocate("a", 1, true); err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	if _, err := h.Allocate("b", 1, false); err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	if _, err := h.Allocate("c", 1, false); err != nil {
		return fmt.Errorf("allocate c: %w", err)
	}
	if err := h.AddReference("b", "c"); err != nil {
		return fmt.Errorf("add_reference b,c: %w", err)
	}
	if err := h.AddReference("c", "b"); err != nil {
		return fmt.Errorf("add_reference c,b: %w", err)
	}

	h.Collect()

	for _, blk := range h.IterateBlocks() {
		if blk.State == heap.Used && (blk.Name == "b" || blk.Name == "c") {
			return fmt.Errorf("expected %q to be freed by the collector", blk.Name)
		}
		if blk.State != heap.Used && blk.Name == "a" {
			return fmt.Errorf("expected the root block %q to survive", "a")
		}
	}
	return nil
}

// scenarioGCTriggeredByAllocation: budget 10 yields blocks {2,3,5,8}. a and
// b consume the 8 and 5 blocks, c (the root) consumes the 3 block, leaving
// only the size-2 block free — too small for a 4th request targeting size
// 3. That failing first-fit triggers an implicit collection reclaiming the
// unreachable non-root blocks a and b, letting the allocation succeed on
// the retry.
func scenarioGCTriggeredByAllocation() error {
	h := heap.New(10)
	defer h.Teardown()

	if _, err := h.Allocate("a", 8, false); err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	if _, err := h.Allocate("b", 5, false); err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	if _, err := h.Allocate("c", 3, true); err != nil {
		return fmt.Errorf("allocate c: %w", err)
	}
	if _, err := h.Allocate("d", 3, false); err != nil {
		return fmt.Errorf("allocate d (expected to succeed via implicit GC): %w", err)
	}
	return nil
}

// scenarioMergeOnFree: after the split-chain scenario (budget 30's
// {2,3,5,8,13,21}), freeing both halves cascades: freeing a merges the
// list's leading 2+3 into 5 and the trailing 13+21 into 34; freeing b then
// cascades 5+3->8->13 against its former block, settling on {5,13,34} with
// no further merge since neither 5+13 nor 13+34 is a Fibonacci pair.
func scenarioMergeOnFree() error {
	h := heap.New(30)
	defer h.Teardown()

	if _, err := h.Allocate("a", 4, false); err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	if _, err := h.Allocate("b", 4, false); err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	if err := h.Free("a"); err != nil {
		return fmt.Errorf("free a: %w", err)
	}
	if err := h.Free("b"); err != nil {
		return fmt.Errorf("free b: %w", err)
	}

	want := []int{5, 13, 34}
	var got []int
	for _, blk := range h.IterateBlocks() {
		if blk.State == heap.Free {
			got = append(got, blk.Size)
		}
	}
	sort.Ints(got)
	if !equalIntSlices(got, want) {
		return fmt.Errorf("expected free block sizes %v, got %v", want, got)
	}
	return nil
}
