// Package tour - lazy lexicographic permutation stream.
//
// The exhaustive solver must walk all (n-1)! orderings of the non-start
// cities without materializing them: a naive "generate the full list"
// approach costs O(n!·n) memory and falls over long before the algorithmic
// time limit is reached. permuter keeps O(n) state and hands out one
// ordering at a time, in strictly lexicographic order over index values,
// which is exactly the fixed enumeration order the tie-break contract is
// defined against.
package tour

// permuter is a single-pass, non-restartable stream of all permutations of
// the indices 0..m-1, produced in lexicographic order.
//
// The zero value is not useful; construct with newPermuter. After
// construction idx holds the first (identity) permutation; each call to
// next advances idx in place and reports whether a further permutation
// exists. Callers must consume idx before advancing, and must not retain it
// across calls.
type permuter struct {
	idx []int // current permutation, mutated in place
}

// newPermuter returns a stream positioned at the identity permutation of
// 0..m-1. For m == 0 the stream holds a single empty permutation.
//
// Complexity: O(m) time and space.
func newPermuter(m int) *permuter {
	idx := make([]int, m)
	for i := 0; i < m; i++ {
		idx[i] = i
	}

	return &permuter{idx: idx}
}

// next advances to the lexicographically following permutation in place.
// It returns false once the stream is exhausted (current permutation is the
// lexicographically last one); the stream cannot be rewound.
//
// Standard next-permutation scheme:
//  1. Find the rightmost ascent i with idx[i] < idx[i+1].
//  2. Swap idx[i] with the rightmost element greater than it.
//  3. Reverse the suffix after i.
//
// Complexity: O(m) worst case per call, O(1) extra space.
func (p *permuter) next() bool {
	var (
		idx = p.idx
		m   = len(idx)
		i   int
		j   int
	)

	// Step 1: rightmost ascent.
	i = m - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		// Fully descending: this was the last permutation.
		return false
	}

	// Step 2: rightmost element exceeding idx[i].
	j = m - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]

	// Step 3: reverse the suffix to restore ascending order after the pivot.
	for lo, hi := i+1, m-1; lo < hi; lo, hi = lo+1, hi-1 {
		idx[lo], idx[hi] = idx[hi], idx[lo]
	}

	return true
}
