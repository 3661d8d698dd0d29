// Package scenario defines the JSON operation format read by the -seed
// startup script, and replays a sequence of such operations against a Heap.
// cmd/fibheap-scenarios does not use this format; its scenarios are Go
// functions calling the Heap directly.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agbru/fibheap/internal/heap"
)

// Operation is one step of a replayable script: an allocate, free,
// reference edit, root-flag change, or collect, expressed the same way the
// HTTP transport's request bodies are (internal/server/handlers.go).
type Operation struct {
	Op     string `json:"op"`
	Name   string `json:"name,omitempty"`
	Size   int    `json:"size,omitempty"`
	IsRoot bool   `json:"is_root,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Action string `json:"action,omitempty"`
}

// StepResult records the outcome of replaying a single Operation.
type StepResult struct {
	Operation  Operation `json:"operation"`
	Error      string    `json:"error,omitempty"`
	FreedCount int       `json:"freed_count,omitempty"`
}

// LoadFile reads a JSON array of Operations from path.
func LoadFile(path string) ([]Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed script: %w", err)
	}
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("parsing seed script: %w", err)
	}
	return ops, nil
}

// Replay applies every operation against h in order, continuing past
// per-step errors (each is recorded, not fatal) so a script's full effect
// is always visible.
func Replay(h *heap.Heap, ops []Operation) []StepResult {
	results := make([]StepResult, len(ops))
	for i, op := range ops {
		results[i] = apply(h, op)
	}
	return results
}

func apply(h *heap.Heap, op Operation) StepResult {
	result := StepResult{Operation: op}

	var err error
	switch op.Op {
	case "allocate":
		_, err = h.Allocate(op.Name, op.Size, op.IsRoot)
	case "free":
		err = h.Free(op.Name)
	case "reference":
		switch op.Action {
		case "add":
			err = h.AddReference(op.From, op.To)
		case "remove":
			err = h.RemoveReference(op.From, op.To)
		default:
			err = fmt.Errorf("reference operation requires action \"add\" or \"remove\", got %q", op.Action)
		}
	case "root":
		err = h.SetRoot(op.Name, op.IsRoot)
	case "collect":
		result.FreedCount = h.Collect()
	default:
		err = fmt.Errorf("unknown operation %q", op.Op)
	}

	if err != nil {
		result.Error = err.Error()
	}
	return result
}
