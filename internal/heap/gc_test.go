package heap

import "testing"

func TestCollectHonorsDanglingReferences(t *testing.T) {
	h := New(30)
	if _, err := h.Allocate("root", 1, true); err != nil {
		t.Fatalf("Allocate root: %v", err)
	}
	if err := h.AddReference("root", "ghost"); err != nil {
		t.Fatalf("AddReference: %v", err)
	}

	freed := h.Collect()
	if freed != 0 {
		t.Fatalf("Collect() freed = %d, want 0 (dangling reference must not panic or reclaim root)", freed)
	}
	if _, idx := h.list.FindUsed("root"); idx == -1 {
		t.Fatal("root block should survive a dangling reference")
	}
}

func TestCollectKeepsReachableChain(t *testing.T) {
	h := New(30)
	if _, err := h.Allocate("root", 1, true); err != nil {
		t.Fatalf("Allocate root: %v", err)
	}
	if _, err := h.Allocate("mid", 1, false); err != nil {
		t.Fatalf("Allocate mid: %v", err)
	}
	if _, err := h.Allocate("leaf", 1, false); err != nil {
		t.Fatalf("Allocate leaf: %v", err)
	}
	if err := h.AddReference("root", "mid"); err != nil {
		t.Fatalf("AddReference root->mid: %v", err)
	}
	if err := h.AddReference("mid", "leaf"); err != nil {
		t.Fatalf("AddReference mid->leaf: %v", err)
	}

	freed := h.Collect()
	if freed != 0 {
		t.Fatalf("Collect() freed = %d, want 0 (entire chain reachable)", freed)
	}
	for _, name := range []string{"root", "mid", "leaf"} {
		if _, idx := h.list.FindUsed(name); idx == -1 {
			t.Fatalf("%q should survive collection via reachability chain", name)
		}
	}
}

func TestCollectClearsMarkBitsOnEveryBlock(t *testing.T) {
	h := New(30)
	if _, err := h.Allocate("root", 1, true); err != nil {
		t.Fatalf("Allocate root: %v", err)
	}
	if _, err := h.Allocate("orphan", 1, false); err != nil {
		t.Fatalf("Allocate orphan: %v", err)
	}

	h.Collect()

	for i := 0; i < h.list.Len(); i++ {
		if h.list.Block(i).mark {
			t.Fatalf("block %d still marked after collection, want all marks cleared", i)
		}
	}
}

func TestCollectNonRootUnreferencedIsReclaimed(t *testing.T) {
	h := New(30)
	if _, err := h.Allocate("root", 1, true); err != nil {
		t.Fatalf("Allocate root: %v", err)
	}
	if _, err := h.Allocate("orphan", 1, false); err != nil {
		t.Fatalf("Allocate orphan: %v", err)
	}

	freed := h.Collect()
	if freed != 1 {
		t.Fatalf("Collect() freed = %d, want 1", freed)
	}
	if _, idx := h.list.FindUsed("orphan"); idx != -1 {
		t.Fatal("orphan should have been reclaimed")
	}
}
