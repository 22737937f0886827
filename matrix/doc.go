// SPDX-License-Identifier: MIT

// Package matrix offers a dense row-major Matrix and the direct solvers built on it.
//
// The matrix package provides:
//
//   - Dense, a flat float64 buffer behind the Matrix interface, with a
//     finite-values guard on Set (see WithNoValidateNaNInf).
//   - Solve, Gaussian elimination with partial pivoting and back-substitution
//     for square and overdetermined systems A·x = b.
//   - Inverse, Gauss-Jordan elimination with partial pivoting on [A | I].
//   - NewIdentity, Mul, MatVec and AllClose for building and checking results.
//
// Singular inputs are reported as ErrSingular when a pivot falls below the
// relative tolerance (WithPivotTolerance). WithNoSingularCheck restores the
// older contract of dividing anyway and returning Inf/NaN components.
//
// All errors wrap package sentinels and are matched with errors.Is.
// Kernels log singular pivots at debug level under the "matrix" subsystem.
package matrix
