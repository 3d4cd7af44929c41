// SPDX-License-Identifier: MIT

package partition

// Range is a contiguous block of rows [First, First+Count).
// Count may be zero when the group has more ranks than rows.
type Range struct {
	First int // index of the first owned row
	Count int // number of owned rows (>= 0)
}

// End returns the exclusive upper bound First+Count.
func (r Range) End() int { return r.First + r.Count }

// Empty reports whether the range owns no rows.
func (r Range) Empty() bool { return r.Count == 0 }

// RowRange returns the rows owned by rank in a group of size ranks splitting n rows.
//
// Implementation:
//   - Stage 1: validate size >= 1, 0 <= rank < size, n >= 0.
//   - Stage 2: first = ⌊rank·n/size⌋, last = ⌊(rank+1)·n/size⌋ − 1.
//   - Stage 3: count = last − first + 1 (zero when n < size for some ranks).
//
// Behavior highlights:
//   - Ranges are contiguous, disjoint and cover [0,n) exactly across ranks.
//   - Excess rows accumulate in later ranks by construction (not round-robin).
//
// Errors:
//   - ErrInvalidSize, ErrInvalidRank, ErrNegativeDimension (wrapped with context).
//
// Complexity:
//   - Time O(1), Space O(1).
func RowRange(rank, n, size int) (Range, error) {
	if err := validate(n, size); err != nil {
		return Range{}, partitionErrorf(opRowRange, n, size, err)
	}
	if rank < 0 || rank >= size {
		return Range{}, partitionErrorf(opRowRange, n, size, ErrInvalidRank)
	}

	return rowRange(rank, n, size), nil
}

// rowRange is the unchecked core of RowRange; callers validate inputs.
func rowRange(rank, n, size int) Range {
	first := rank * n / size
	last := (rank+1)*n/size - 1

	return Range{First: first, Count: last - first + 1}
}

// validate checks the group-wide inputs shared by RowRange and BuildTable.
func validate(n, size int) error {
	if size < 1 {
		return ErrInvalidSize
	}
	if n < 0 {
		return ErrNegativeDimension
	}

	return nil
}
