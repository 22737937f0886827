// SPDX-License-Identifier: MIT

// Package matrix - matrix inversion (Gauss-Jordan elimination, partial pivoting).
package matrix

import "gonum.org/v1/gonum/floats"

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting on
// the augmented n×2n buffer [A | I]. The input must be non-nil, non-empty and
// square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateNonEmpty, ValidateSquare and (unless
//     disabled) ValidateFinite.
//   - Stage 2: identity := NewIdentity(n); build the owned [A | identity] buffer.
//   - Stage 3: Forward phase for i = 0..n-1: partial pivot on column i (same rule
//     as Solve), singular check, eliminate below across columns i..2n-1.
//   - Stage 4: Backward phase for i = n-1..0: eliminate above the pivot across
//     columns i..2n-1, then divide row i (columns i..2n-1) by the pivot.
//   - Stage 5: Copy the right half (columns n..2n-1) into the result.
//
// Behavior highlights:
//   - Entries below the diagonal are already zero when the backward phase
//     reaches them, so the backward phase only touches rows above the pivot.
//   - Deterministic loop orders; ties in the pivot search keep the upper row.
//
// Inputs:
//   - m: non-nil square matrix (n×n), n ≥ 1.
//   - opts: WithPivotTolerance, WithNoValidateNaNInf, WithNoSingularCheck.
//
// Returns:
//   - Matrix: *Dense(n×n) containing A⁻¹.
//
// Errors (wrapped with "Inverse"):
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare (matches ErrDimensionMismatch),
//   - ErrNaNInf (non-finite input, when validation is on),
//   - ErrSingular (no usable pivot in some column).
//
// Under WithNoSingularCheck a zero pivot is divided by anyway and the result
// carries ±Inf/NaN instead of an error.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation in documented priority order.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	// Stage 2: [A | I].
	n := m.Rows()
	identity, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := augment(m, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(aug.rowSlice(i)[n:], identity.rowSlice(i))
	}
	threshold := o.pivotTol * maxAbsCols(aug, 0, n)

	// Stage 3: forward phase (upper-triangular left half).
	for i := 0; i < n; i++ {
		if err = pivotStep(aug, i, threshold, o, opInverse); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		eliminateBelow(aug, i, n)
	}

	// Stage 4: backward phase (reduce above, normalise the pivot row).
	var row []float64
	for i := n - 1; i >= 0; i-- {
		eliminateAbove(aug, i)
		row = aug.rowSlice(i)[i:]
		floats.Scale(1/row[0], row) // pivot becomes 1
	}

	// Stage 5: extract the right half.
	inv, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(inv.rowSlice(i), aug.rowSlice(i)[n:])
	}

	if !o.singularCheck && HasNonFinite(inv.data) {
		log.Debugw("non-finite inverse", "op", opInverse, "n", n)
	}

	return inv, nil
}
