package heap

import (
	"fmt"

	"github.com/agbru/fibheap/internal/apperrors"
	"github.com/agbru/fibheap/internal/logging"
)

// Allocate satisfies an allocation request via best-fit over free blocks,
// splitting the chosen block down to the closest Fibonacci size >= size. If
// no free block fits, it runs one garbage collection cycle and retries
// exactly once before failing. Grounded on allocate_memory /
// findBestFit_by_buddy_system.
func (h *Heap) Allocate(name string, size int, isRoot bool) (BlockView, error) {
	if len(name) > maxNameLength {
		h.observer.OnWarning(fmt.Sprintf("name %q exceeds %d characters", name, maxNameLength))
		return BlockView{}, apperrors.NameTooLongError{Name: name}
	}
	if size <= 0 {
		return BlockView{}, apperrors.InvalidSizeError{Requested: size}
	}
	if _, idx := h.list.FindUsed(name); idx != -1 {
		return BlockView{}, apperrors.DuplicateNameError{Name: name}
	}

	target := closestFibGE(size)
	idx := h.bestFit(target)
	if idx == -1 {
		h.logger.Debug("no free block fits request, running garbage collection",
			logging.String("name", name), logging.Int("requested", size))
		h.Collect()
		idx = h.bestFit(target)
		if idx == -1 {
			outOfMemoryTotal.Inc()
			return BlockView{}, apperrors.OutOfMemoryError{Requested: size}
		}
	}

	block := h.list.Block(idx)
	if block.Size > target {
		originalSize := block.Size
		h.list.Split(idx, target)
		h.observer.OnSplit(originalSize, target)
		h.record("Split block of size %d down to %d", originalSize, block.Size)
	}

	block.State = Used
	block.Name = name
	block.AllocatedSize = size
	block.IsRoot = isRoot
	block.mark = false

	h.stats.TotalAllocations++
	allocationsTotal.Inc()
	h.refreshGauges()
	h.observer.OnAllocate(name, size, block.Size, isRoot)
	h.logger.Info("allocated block",
		logging.String("name", name), logging.Int("requested", size),
		logging.Int("block_size", block.Size), logging.Bool("root", isRoot))
	h.record("Allocated '%s' (requested: %d, block: %d, root: %v)", name, size, block.Size, isRoot)

	return block.view(), nil
}

// bestFit returns the index of the smallest free block with size >= target,
// ties broken by list order. Grounded on findBestFit_by_buddy_system.
func (h *Heap) bestFit(target int) int {
	best := -1
	for i := 0; i < h.list.Len(); i++ {
		b := h.list.Block(i)
		if b.State == Free && b.Size >= target {
			if best == -1 || b.Size < h.list.Block(best).Size {
				best = i
			}
		}
	}
	return best
}

// Free releases a Used block by name, clears its reference edges, and runs
// the merge pass. Grounded on free_memory.
func (h *Heap) Free(name string) error {
	block, _ := h.list.FindUsed(name)
	if block == nil {
		return apperrors.NotFoundError{Name: name}
	}

	freedSize := block.Size
	block.State = Free
	block.References = nil
	block.IsRoot = false
	block.Name = ""
	block.AllocatedSize = 0

	h.stats.TotalManualFrees++
	freesTotal.Inc()
	h.observer.OnFree(name, freedSize)
	h.logger.Info("freed block", logging.String("name", name), logging.Int("size", freedSize))
	h.record("Manually freed '%s' (size: %d)", name, freedSize)

	if merged := h.list.MergeAdjacent(); merged > 0 {
		h.observer.OnMerge(merged)
		h.record("Merged %d adjacent free block(s)", merged)
	}
	h.refreshGauges()
	return nil
}
