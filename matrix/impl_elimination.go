// SPDX-License-Identifier: MIT

// Package matrix - linear system solver (Gaussian elimination, partial pivoting).
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solve returns x such that A·x = b, using Gaussian elimination with partial
// pivoting followed by back-substitution. A is m×n with m ≥ n; b has length m.
//
// Implementation:
//   - Stage 1: Validate shape (ValidateSystem) and, unless disabled, finiteness of A and b.
//   - Stage 2: Build the owned m×(n+1) augmented buffer [A | b].
//   - Stage 3: Forward elimination for i = 0..n-1: pick the row in i..m-1 with the
//     largest |aug[r][i]|, swap it into row i, reject it when |pivot| ≤ tol·scale,
//     then subtract factor·row_i from every row below (columns ≥ i).
//   - Stage 4: For m > n, every surplus row now reads 0 = residual; a residual
//     above tol·m·scale means the equations contradict each other.
//   - Stage 5: Back-substitution for i = n-1..0:
//     x[i] = (aug[i][n] − Σ_{j>i} aug[i][j]·x[j]) / aug[i][i].
//
// Behavior highlights:
//   - A and b are read-only; all mutation happens on the augmented copy.
//   - Ties in the pivot search keep the upper row (deterministic).
//
// Inputs:
//   - a: non-nil coefficient matrix, m×n, m ≥ n ≥ 1.
//   - b: constants, len(b) == m.
//   - opts: WithPivotTolerance, WithNoValidateNaNInf, WithNoSingularCheck.
//
// Returns:
//   - []float64: fresh solution vector of length n.
//
// Errors (wrapped with "Solve"):
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (shape),
//   - ErrNaNInf (non-finite input, when validation is on),
//   - ErrSingular (no usable pivot in some column),
//   - ErrInconsistent (overdetermined system with contradicting surplus rows).
//
// Under WithNoSingularCheck neither ErrSingular nor ErrInconsistent is
// produced; division by a zero pivot yields ±Inf/NaN in x instead.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation in documented priority order.
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if err := ValidateFiniteVec(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	// Stage 2: augmented working buffer [A | b].
	m, n := a.Rows(), a.Cols()
	aug, err := augment(a, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i := 0; i < m; i++ {
		aug.data[i*aug.c+n] = b[i] // constant column
	}
	scale := maxAbsCols(aug, 0, n)
	residualScale := math.Max(scale, maxAbsCols(aug, n, n+1))
	threshold := o.pivotTol * scale

	// Stage 3: forward elimination over the n variable columns, all m rows.
	for i := 0; i < n; i++ {
		if err = pivotStep(aug, i, threshold, o, opSolve); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		eliminateBelow(aug, i, m)
	}

	// Stage 4: surplus equations must reduce to 0 = 0.
	if o.singularCheck && m > n {
		if err = checkResiduals(aug, n, o.pivotTol*float64(m)*residualScale); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	// Stage 5: back-substitution on the upper-triangular n×n block.
	x := make([]float64, n)
	var row []float64
	for i := n - 1; i >= 0; i-- {
		row = aug.rowSlice(i)
		x[i] = (row[n] - floats.Dot(row[i+1:n], x[i+1:n])) / row[i]
	}

	if !o.singularCheck && HasNonFinite(x) {
		log.Debugw("non-finite solution", "op", opSolve, "rows", m, "cols", n)
	}

	return x, nil
}

// checkResiduals verifies rows n..r-1 of a forward-eliminated m×(n+1) buffer:
// their coefficient part is zero by construction, so the constant column holds
// the residual of each surplus equation.
// Errors: ErrInconsistent when some |residual| > threshold (NaN counts as inconsistent).
func checkResiduals(aug *Dense, n int, threshold float64) error {
	var res float64
	for r := n; r < aug.r; r++ {
		res = aug.data[r*aug.c+n]
		if !(math.Abs(res) <= threshold) {
			log.Debugw("inconsistent equation", "op", opSolve, "row", r, "residual", res, "threshold", threshold)
			return fmt.Errorf("surplus row %d residual %g: %w", r, res, ErrInconsistent)
		}
	}

	return nil
}
