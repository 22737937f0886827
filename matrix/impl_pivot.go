// SPDX-License-Identifier: MIT

// Package matrix - shared building blocks of the elimination kernels.
//
// Purpose:
//   - Build the owned augmented working buffer ([A | extra columns]).
//   - Partial pivoting: pick the row with the largest |entry| in the pivot column.
//   - Row reduction below a pivot on contiguous row slices (gonum/floats).
//
// Determinism:
//   - Pivot search scans rows top-down and only moves on a STRICTLY larger
//     magnitude, so ties resolve to the lowest row index.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// augment copies a (r×c) into a fresh r×(c+extra) Dense whose trailing
// `extra` columns are zero. The result never aliases a's storage.
//
// Implementation:
//   - Stage 1: allocate r×(c+extra) with the guard disabled (kernels write the
//     buffer directly; finiteness is decided by the caller's options).
//   - Stage 2: *Dense fast-path copies row slices; other Matrix values go through At.
//
// Complexity: Time O(r*(c+extra)), Space O(r*(c+extra)).
func augment(a Matrix, extra int) (*Dense, error) {
	r, c := a.Rows(), a.Cols()
	aug, err := newDenseWithPolicy(r, c+extra, false)
	if err != nil {
		return nil, err
	}

	if d, ok := a.(*Dense); ok {
		for i := 0; i < r; i++ {
			copy(aug.rowSlice(i)[:c], d.rowSlice(i))
		}
		return aug, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		row := aug.rowSlice(i)
		for j = 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
	}

	return aug, nil
}

// maxAbsCols returns max |aug[i][j]| over all rows and columns j in [c0, c1).
// NaN entries are ignored. Used as the scale of the relative pivot tolerance.
// Complexity: O(r*(c1-c0)).
func maxAbsCols(aug *Dense, c0, c1 int) float64 {
	best := 0.0
	for i := 0; i < aug.r; i++ {
		for _, v := range aug.rowSlice(i)[c0:c1] {
			if v = math.Abs(v); v > best {
				best = v
			}
		}
	}

	return best
}

// selectPivot returns the index of the row in [from, aug.r) with the largest
// |aug[row][col]|. Ties keep the earliest row (strictly-greater rule).
// Complexity: O(aug.r - from).
func selectPivot(aug *Dense, col, from int) int {
	pivotRow := from
	best := math.Abs(aug.data[from*aug.c+col])
	for j := from + 1; j < aug.r; j++ {
		if v := math.Abs(aug.data[j*aug.c+col]); v > best {
			best = v
			pivotRow = j
		}
	}

	return pivotRow
}

// pivotUsable reports |p| > threshold. NaN pivots are never usable.
func pivotUsable(p, threshold float64) bool {
	return math.Abs(p) > threshold
}

// eliminateBelow zeroes column i below the pivot row i for rows (i, rows):
//
//	factor = aug[j][i] / aug[i][i]
//	aug[j][k] -= factor * aug[i][k]   for k ≥ i
//
// Columns < i are already zero and skipped. The update runs on contiguous row
// slices via floats.AddScaled.
// Complexity: O((rows-i) * (aug.c-i)).
func eliminateBelow(aug *Dense, i, rows int) {
	pivotRow := aug.rowSlice(i)[i:]
	pivot := pivotRow[0]
	for j := i + 1; j < rows; j++ {
		row := aug.rowSlice(j)[i:]
		factor := row[0] / pivot
		floats.AddScaled(row, -factor, pivotRow) // row -= factor * pivotRow
	}
}

// eliminateAbove zeroes column i above the pivot row i for rows [0, i),
// restricted to columns ≥ i (everything left of i is already reduced).
// Complexity: O(i * (aug.c-i)).
func eliminateAbove(aug *Dense, i int) {
	pivotRow := aug.rowSlice(i)[i:]
	pivot := pivotRow[0]
	for j := 0; j < i; j++ {
		row := aug.rowSlice(j)[i:]
		factor := row[0] / pivot
		floats.AddScaled(row, -factor, pivotRow)
	}
}

// pivotStep selects and swaps the pivot for column i, then applies the
// singular check. On success the pivot sits at aug[i][i].
//
// Errors:
//   - ErrSingular when checks are enabled and |pivot| ≤ threshold.
func pivotStep(aug *Dense, i int, threshold float64, o Options, op string) error {
	aug.swapRows(i, selectPivot(aug, i, i)) // partial pivoting
	pivot := aug.data[i*aug.c+i]
	if o.singularCheck && !pivotUsable(pivot, threshold) {
		log.Debugw("singular pivot", "op", op, "column", i, "pivot", pivot, "threshold", threshold)
		return fmt.Errorf("column %d: %w", i, ErrSingular)
	}

	return nil
}
