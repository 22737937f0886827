// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag
// ("Solve: ...", "Inverse: ..."); callers still use errors.Is to match.
//
// ERROR KINDS:
//   - InvalidInput      : ErrInvalidInput, and the narrower ErrNaNInf / ErrInvalidDimensions.
//   - DimensionMismatch : ErrDimensionMismatch, and the narrower ErrNonSquare.
//   - SingularMatrix    : ErrSingular.
//   - Inconsistent      : ErrInconsistent (overdetermined systems only).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> shape -> NaN/Inf -> singular pivot -> inconsistency.

var (
	// ErrInvalidInput is the umbrella kind for malformed but well-shaped input:
	// non-positive sizes and non-finite values.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (or negative, for constructors that accept empty shapes).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidInput)

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, kernels).
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidInput)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != A.Rows() in Solve, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// errors.Is(ErrNonSquare, ErrDimensionMismatch) holds.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no usable pivot exists in the remaining rows
	// of a pivot column: the matrix is singular or numerically indistinguishable
	// from singular under the configured pivot tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInconsistent is returned by Solve for an overdetermined system whose
	// surplus equations contradict the ones used to determine the solution.
	ErrInconsistent = errors.New("matrix: inconsistent system")
)
