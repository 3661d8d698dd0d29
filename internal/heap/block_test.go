package heap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewList(t *testing.T) {
	l := NewList(20)
	want := []int{2, 3, 5, 8, 13}
	if l.Len() != len(want) {
		t.Fatalf("NewList(20).Len() = %d, want %d", l.Len(), len(want))
	}
	for i, w := range want {
		if got := l.Block(i).Size; got != w {
			t.Errorf("block %d size = %d, want %d", i, got, w)
		}
		if l.Block(i).State != Free {
			t.Errorf("block %d state = %v, want Free", i, l.Block(i).State)
		}
	}
}

func TestSplitPreservesTotalSize(t *testing.T) {
	l := NewList(20)
	before := l.TotalSize()
	// block 2 has size 5; split down to target 3.
	l.Split(2, 3)
	after := l.TotalSize()
	if before != after {
		t.Fatalf("Split changed total size: before=%d after=%d", before, after)
	}
	if l.Block(2).Size != 3 {
		t.Errorf("split block size = %d, want 3", l.Block(2).Size)
	}
	if l.Block(3).Size != 2 {
		t.Errorf("residual block size = %d, want 2", l.Block(3).Size)
	}
}

func TestMergeAdjacentRestartsFromHead(t *testing.T) {
	l := &List{blocks: []*Block{
		{Size: 2, State: Free},
		{Size: 3, State: Free},
		{Size: 8, State: Free},
	}}
	// 2+3 merges into 5 at the head; only a rescan from the head then sees
	// the new 5 beside 8 and merges them into 13.
	merged := l.MergeAdjacent()
	if merged != 2 {
		t.Fatalf("merged = %d, want 2", merged)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() after merge = %d, want 1", l.Len())
	}
	if l.Block(0).Size != 13 {
		t.Errorf("final merged size = %d, want 13", l.Block(0).Size)
	}
}

func TestMergeAdjacentSkipsUsedBlocks(t *testing.T) {
	l := &List{blocks: []*Block{
		{Size: 2, State: Free},
		{Size: 3, State: Used, Name: "x"},
		{Size: 5, State: Free},
	}}
	if merged := l.MergeAdjacent(); merged != 0 {
		t.Fatalf("merged = %d, want 0 (Used block blocks adjacency)", merged)
	}
}

// TestTotalSizeInvariant_PropertyBased checks spec.md's invariant that
// total heap size is conserved across any sequence of splits: no split
// call, regardless of which Fibonacci pair it peels apart, changes the sum
// of block sizes.
func TestTotalSizeInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("splitting any block preserves total list size", prop.ForAll(
		func(budget int) bool {
			l := NewList(budget)
			before := l.TotalSize()
			for i := 0; i < l.Len(); i++ {
				b := l.Block(i)
				if b.Size > 2 {
					l.Split(i, 2)
				}
			}
			return l.TotalSize() == before
		},
		gen.IntRange(20, 500),
	))

	properties.TestingRun(t)
}
