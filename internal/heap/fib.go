package heap

// The canonical Fibonacci sequence used for block sizes is 2, 3, 5, 8, 13,
// ... — each term c = a+b starting from the pair (1,1), which is itself
// never emitted as a block size. Grounded on
// original_source/Heap_managment.c's generateFibonacciList /
// getPreviousFibonacci / getClosestFibonacci / isFibonacciPair, re-expressed
// idiomatically (no fixed-size C array, package-private helpers instead of
// globals).

// fibSeqUpTo returns every Fibonacci number from the canonical sequence that
// is less than or equal to limit, in ascending order.
func fibSeqUpTo(limit int) []int {
	var seq []int
	a, b := 1, 1
	for {
		c := a + b
		if c > limit {
			break
		}
		seq = append(seq, c)
		a, b = b, c
	}
	return seq
}

// closestFibGE returns the smallest Fibonacci number in the canonical
// sequence that is greater than or equal to n.
func closestFibGE(n int) int {
	a, b := 1, 1
	c := a + b
	for c < n {
		a, b = b, c
		c = a + b
	}
	return c
}

// prevFibOf returns, for a Fibonacci number s, the Fibonacci f such that
// (s-f, f) are consecutive Fibonacci numbers — the Fibonacci predecessor of
// s. Used by split to decompose a block one step at a time.
func prevFibOf(s int) int {
	a, b := 1, 1
	c := a + b
	for c < s {
		a, b = b, c
		c = a + b
	}
	return b
}

// isFibPair reports whether a and b are adjacent Fibonacci numbers in the
// canonical sequence, in either order. Two equal sizes are a pair only if
// their sum is itself Fibonacci and equals twice their value, which the
// sequence's strict growth rule never produces for a,b >= 2 — so e.g.
// isFibPair(5, 5) is false, matching spec.md §9's documented open question.
func isFibPair(a, b int) bool {
	x, y := 1, 1
	z := x + y
	for z < a || z < b {
		x, y = y, z
		z = x + y
	}
	return (z == a && y == b) || (z == b && y == a)
}
