// SPDX-License-Identifier: MIT

package linsolve

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linsolve/matrix"
)

var log = logging.Logger("linsolve")

// Operation tags for error wrapping.
const (
	opSolve          = "linsolve: Solve"
	opInvert         = "linsolve: Invert"
	opIdentity       = "linsolve: Identity"
	opSolveAndInvert = "linsolve: SolveAndInvert"
)

// Report holds both results computed for one system.
type Report struct {
	// Solution is x with A·x = b.
	Solution []float64
	// Inverse is A⁻¹, or nil when A is not square.
	Inverse [][]float64
}

// Solve returns x with coefficients·x = constants.
//
// coefficients is row-major and rectangular with at least as many rows as
// columns; len(constants) must equal the row count. Neither argument is
// modified.
//
// Errors: matrix.ErrInvalidDimensions (empty), matrix.ErrDimensionMismatch
// (ragged rows, underdetermined, constants length), matrix.ErrNaNInf,
// matrix.ErrSingular, matrix.ErrInconsistent.
func Solve(coefficients [][]float64, constants []float64, opts ...matrix.Option) ([]float64, error) {
	a, err := matrix.NewDenseFromRows(coefficients, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	x, err := matrix.Solve(a, constants, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, nil
}

// Invert returns the inverse of a square matrix as fresh rows.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch (ragged),
// matrix.ErrNonSquare, matrix.ErrNaNInf, matrix.ErrSingular.
func Invert(m [][]float64, opts ...matrix.Option) ([][]float64, error) {
	a, err := matrix.NewDenseFromRows(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	return invertDense(a, opts...)
}

func invertDense(a *matrix.Dense, opts ...matrix.Option) ([][]float64, error) {
	inv, err := matrix.Inverse(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	rows, err := matrix.ToRows(inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	return rows, nil
}

// Identity returns the size×size identity as rows.
// Identity(0) is an empty, non-nil slice; negative sizes fail with
// matrix.ErrInvalidDimensions.
func Identity(size int) ([][]float64, error) {
	I, err := matrix.NewIdentity(size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentity, err)
	}

	return I.ToRows(), nil
}

// SolveAndInvert computes the solution and, for square systems, the inverse
// of the same coefficient matrix in parallel.
//
// The input is copied once; both kernels only read that copy. The first
// failing kernel's error is returned and no partial Report is produced.
// ctx is checked before each kernel starts; a running kernel is not
// interrupted.
func SolveAndInvert(ctx context.Context, coefficients [][]float64, constants []float64, opts ...matrix.Option) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveAndInvert, err)
	}
	a, err := matrix.NewDenseFromRows(coefficients, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveAndInvert, err)
	}

	var (
		report Report
		square = a.Rows() == a.Cols()
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		x, err := matrix.Solve(a, constants, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", opSolve, err)
		}
		report.Solution = x
		return nil
	})

	if square {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inv, err := invertDense(a, opts...)
			if err != nil {
				return err
			}
			report.Inverse = inv
			return nil
		})
	} else {
		log.Debugw("skipping inverse of non-square system", "rows", a.Rows(), "cols", a.Cols())
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveAndInvert, err)
	}

	return &report, nil
}
