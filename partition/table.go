// SPDX-License-Identifier: MIT

package partition

// Table maps every rank to the slice of a flat row-major N×N buffer it owns.
// Counts and offsets are measured in ELEMENTS (rows × n), not rows, because the
// collectives address a flat buffer.
//
// A Table is immutable after BuildTable returns; accessors never expose the
// backing slices. It satisfies comm.Layout.
type Table struct {
	n       int   // matrix dimension (columns per row)
	size    int   // number of ranks
	counts  []int // counts[r]  = rowCount(r) * n
	offsets []int // offsets[r] = firstRow(r) * n
}

// BuildTable computes the per-rank element layout for an n×n matrix split over
// size ranks.
//
// Implementation:
//   - Stage 1: validate n >= 0, size >= 1.
//   - Stage 2: for each rank r apply rowRange(r, n, size).
//   - Stage 3: counts[r] = count·n; offsets[r] = first·n.
//
// Behavior highlights:
//   - Deterministic: a pure function of (n, size), so every rank may build it
//     locally instead of receiving it from the coordinator.
//   - offsets are non-decreasing in rank order and offsets[r]+counts[r] ==
//     offsets[r+1]; the last block ends at n·n.
//
// Errors:
//   - ErrInvalidSize, ErrNegativeDimension (wrapped).
//
// Complexity:
//   - Time O(size), Space O(size).
func BuildTable(n, size int) (*Table, error) {
	if err := validate(n, size); err != nil {
		return nil, partitionErrorf(opBuildTable, n, size, err)
	}

	t := &Table{
		n:       n,
		size:    size,
		counts:  make([]int, size),
		offsets: make([]int, size),
	}
	var rg Range
	for r := 0; r < size; r++ {
		rg = rowRange(r, n, size)
		t.counts[r] = rg.Count * n
		t.offsets[r] = rg.First * n
	}

	return t, nil
}

// N returns the matrix dimension the table was built for.
func (t *Table) N() int { return t.n }

// Size returns the number of ranks described by the table.
func (t *Table) Size() int { return t.size }

// Count returns the number of elements owned by rank.
// Out-of-range ranks own nothing.
func (t *Table) Count(rank int) int {
	if rank < 0 || rank >= t.size {
		return 0
	}

	return t.counts[rank]
}

// Offset returns the element displacement of rank's block in the flat buffer.
// Out-of-range ranks report 0.
func (t *Table) Offset(rank int) int {
	if rank < 0 || rank >= t.size {
		return 0
	}

	return t.offsets[rank]
}

// Range returns the row range owned by rank.
func (t *Table) Range(rank int) Range {
	if rank < 0 || rank >= t.size || t.n == 0 {
		return Range{}
	}

	return Range{First: t.offsets[rank] / t.n, Count: t.counts[rank] / t.n}
}

// Total returns the number of elements covered by the table (n·n).
func (t *Table) Total() int { return t.n * t.n }

// Counts returns a copy of the per-rank element counts.
func (t *Table) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)

	return out
}

// Offsets returns a copy of the per-rank element offsets.
func (t *Table) Offsets() []int {
	out := make([]int, len(t.offsets))
	copy(out, t.offsets)

	return out
}
