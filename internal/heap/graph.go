package heap

import (
	"fmt"

	"github.com/agbru/fibheap/internal/apperrors"
	"github.com/agbru/fibheap/internal/logging"
)

// AddReference appends a from->to edge to the reference graph. The target
// name need not resolve to any existing block — dangling edges are legal,
// spec.md §3 — only the source must be a Used block. A duplicate edge is a
// warning, not an error. Grounded on addReference.
func (h *Heap) AddReference(from, to string) error {
	fromBlock, _ := h.list.FindUsed(from)
	if fromBlock == nil {
		return apperrors.NotFoundError{Name: from}
	}
	for _, r := range fromBlock.References {
		if r == to {
			h.observer.OnWarning(fmt.Sprintf("reference '%s' -> '%s' already exists", from, to))
			h.record("Reference add skipped (already exists): '%s' -> '%s'", from, to)
			return nil
		}
	}
	fromBlock.References = append(fromBlock.References, to)
	h.logger.Debug("reference added", logging.String("from", from), logging.String("to", to))
	h.record("Reference added: '%s' -> '%s'", from, to)
	return nil
}

// RemoveReference removes an existing from->to edge, preserving the order
// of the remaining entries. A missing edge is a warning, not an error.
// Grounded on removeReference.
func (h *Heap) RemoveReference(from, to string) error {
	fromBlock, _ := h.list.FindUsed(from)
	if fromBlock == nil {
		return apperrors.NotFoundError{Name: from}
	}
	for i, r := range fromBlock.References {
		if r == to {
			fromBlock.References = append(fromBlock.References[:i], fromBlock.References[i+1:]...)
			h.logger.Debug("reference removed", logging.String("from", from), logging.String("to", to))
			h.record("Reference removed: '%s' -> '%s'", from, to)
			return nil
		}
	}
	h.observer.OnWarning(fmt.Sprintf("reference '%s' -> '%s' not found", from, to))
	h.record("Reference remove skipped (not found): '%s' -> '%s'", from, to)
	return nil
}

// SetRoot sets or clears the root flag of a Used block. Grounded on setRoot.
func (h *Heap) SetRoot(name string, isRoot bool) error {
	block, _ := h.list.FindUsed(name)
	if block == nil {
		return apperrors.NotFoundError{Name: name}
	}
	block.IsRoot = isRoot
	h.logger.Debug("root flag set", logging.String("name", name), logging.Bool("root", isRoot))
	h.record("Block '%s' root status set to %v", name, isRoot)
	return nil
}
