// SPDX-License-Identifier: MIT

// Package linsolve solves dense linear systems and inverts dense matrices
// given as plain row slices.
//
// What is inside:
//
//	linsolve/     [][]float64 facade: Solve, Invert, Identity, SolveAndInvert
//	matrix/       Dense storage, validators, options, Gaussian elimination
//	              (Solve) and Gauss-Jordan inversion (Inverse)
//	cmd/linsolve/ reads {"coefficients":..,"constants":..} as JSON and prints
//	              "Variable i: value" lines followed by the inverse rows
//
// Both kernels use partial pivoting: at each step the row with the largest
// absolute entry in the pivot column is swapped into place. A pivot whose
// magnitude does not exceed tol·max|a_ij| is treated as zero and the call
// fails with matrix.ErrSingular (see matrix.WithPivotTolerance and
// matrix.WithNoSingularCheck).
//
// Quick start:
//
//	x, err := linsolve.Solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// x ≈ [0.8 1.4]
//
//	inv, err := linsolve.Invert([][]float64{{2, 1}, {1, 3}})
//	// inv ≈ [[0.6 -0.2] [-0.2 0.4]]
//
// Errors wrap the matrix sentinels; match them with errors.Is.
package linsolve
