// Package combin generates fixed-size index subsets as bit patterns.
package combin

import "fmt"

// Sequence lazily yields every r-element subset of {0..n-1} as a bit
// pattern, in ascending numeric order (Gosper's successor rule). Each
// Sequence is independent and restartable by constructing a new one; the
// order is reproducible, which the enumerator's determinism relies on.
type Sequence struct {
	next  uint64
	limit uint64
	done  bool
}

// NewSequence returns a sequence over all r-subsets of n positions.
func NewSequence(n, r int) *Sequence {
	if r < 1 || r > n || n > 63 {
		panic(fmt.Sprintf("combin: invalid subset size %d of %d", r, n))
	}
	return &Sequence{
		next:  (1 << r) - 1,
		limit: 1 << n,
	}
}

// Next returns the next bit pattern, or false once the sequence is finished.
func (s *Sequence) Next() (uint64, bool) {
	if s.done || s.next >= s.limit {
		s.done = true
		return 0, false
	}
	pattern := s.next

	// Lowest set bit, then ripple-carry to the next same-popcount pattern.
	c := s.next & (-s.next)
	r := s.next + c
	s.next = (((r ^ s.next) >> 2) / c) | r

	return pattern, true
}

// Count returns the binomial coefficient C(n, r).
func Count(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	result := 1
	for i := 1; i <= r; i++ {
		result = result * (n - r + i) / i
	}
	return result
}
