package heap

// maxNameLength mirrors the 20-byte fixed name field (19 usable characters
// plus the NUL terminator) in original_source/Heap_managment.c's Node.name.
const maxNameLength = 19

// BlockState is the lifecycle state of a Block.
type BlockState int

const (
	Free BlockState = iota
	Used
)

func (s BlockState) String() string {
	if s == Used {
		return "used"
	}
	return "free"
}

// Block is the atomic unit of the heap: a fixed-capacity slot that is
// either Free or Used. Grounded on original_source/Heap_managment.c's Node
// struct, with the hand-rolled next pointer dropped in favor of List's
// backing slice.
type Block struct {
	Size          int
	State         BlockState
	Name          string
	AllocatedSize int
	IsRoot        bool
	References    []string

	mark bool // transient: set during mark, cleared during sweep
}

// BlockView is a read-only snapshot of a Block for display and API
// consumers — callers never get a pointer into the live list.
type BlockView struct {
	Size          int
	State         BlockState
	Name          string
	AllocatedSize int
	IsRoot        bool
	References    []string
}

func (b *Block) view() BlockView {
	refs := make([]string, len(b.References))
	copy(refs, b.References)
	return BlockView{
		Size:          b.Size,
		State:         b.State,
		Name:          b.Name,
		AllocatedSize: b.AllocatedSize,
		IsRoot:        b.IsRoot,
		References:    refs,
	}
}

// List is the ordered sequence of blocks forming the heap's linear address
// space. Order is the substrate merging depends on: only adjacent blocks
// may merge. Re-expressed as a slice rather than original_source's
// hand-rolled singly linked list, per DESIGN.md's Open Question decision.
type List struct {
	blocks []*Block
}

// NewList builds the initial free-block list for a heap of the given total
// budget: one free block per Fibonacci number <= budget, in ascending
// order. Grounded on generateFibonacciList / initializeHeap.
func NewList(budget int) *List {
	sizes := fibSeqUpTo(budget)
	blocks := make([]*Block, len(sizes))
	for i, s := range sizes {
		blocks[i] = &Block{Size: s, State: Free}
	}
	return &List{blocks: blocks}
}

// Len returns the number of blocks currently in the list.
func (l *List) Len() int { return len(l.blocks) }

// Block returns the block at index i.
func (l *List) Block(i int) *Block { return l.blocks[i] }

// Blocks returns a shallow copy of the block pointer slice, safe for the
// caller to range over while the list mutates underneath.
func (l *List) Blocks() []*Block {
	out := make([]*Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// TotalSize returns the sum of every block's size, free or used — the
// heap's total budget.
func (l *List) TotalSize() int {
	total := 0
	for _, b := range l.blocks {
		total += b.Size
	}
	return total
}

// FindUsed returns the Used block with the given name and its index, or
// (nil, -1) if none exists. Names are unique among Used blocks only — a
// Free block carries no name.
func (l *List) FindUsed(name string) (*Block, int) {
	for i, b := range l.blocks {
		if b.State == Used && b.Name == name {
			return b, i
		}
	}
	return nil, -1
}

// Split decomposes the free block at index i down to target size. Each
// iteration steps the block's size down exactly one position in the
// canonical Fibonacci sequence (to its predecessor f), freeing the leftover
// (the previous size minus f) as a new block inserted immediately after.
// Stepping one Fibonacci position at a time, rather than jumping by the
// predecessor's own predecessor, is what guarantees landing exactly on
// target regardless of parity — see spec.md §9's split-target subtlety.
// Precondition: l.blocks[i] is Free and target is a Fibonacci number
// reachable from it by repeated predecessor descent (always true for a
// best-fit block and a closestFibGE target). Grounded on splitBlock.
func (l *List) Split(i int, target int) {
	block := l.blocks[i]
	for block.Size > target {
		f := prevFibOf(block.Size)
		leftover := block.Size - f
		block.Size = f
		residual := &Block{Size: leftover, State: Free}
		l.blocks = append(l.blocks, nil)
		copy(l.blocks[i+2:], l.blocks[i+1:])
		l.blocks[i+1] = residual
	}
}

// MergeAdjacent scans the list for adjacent free blocks whose sizes form a
// Fibonacci pair, collapsing the successor into the predecessor, and
// restarts the scan from the head after every merge — the simplest correct
// fixpoint, per spec.md §4.1. Returns the number of merges performed.
// Grounded on mergeBlock.
func (l *List) MergeAdjacent() int {
	merged := 0
	for {
		mergedThisPass := false
		for i := 0; i < len(l.blocks)-1; i++ {
			cur, next := l.blocks[i], l.blocks[i+1]
			if cur.State == Free && next.State == Free && isFibPair(cur.Size, next.Size) {
				cur.Size += next.Size
				l.blocks = append(l.blocks[:i+1], l.blocks[i+2:]...)
				merged++
				mergedThisPass = true
				break
			}
		}
		if !mergedThisPass {
			break
		}
	}
	return merged
}
