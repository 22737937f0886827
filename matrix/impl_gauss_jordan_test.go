// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// TestInverse_Errors verifies the documented error order.
func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	nanA, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", IdentityDense(t, 0), matrix.ErrInvalidDimensions},
		{"non-square", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"non-square is a dimension mismatch", MustDense(t, 3, 2), matrix.ErrDimensionMismatch},
		{"non-finite", nanA, matrix.ErrNaNInf},
		{"singular", FromRows(t, [][]float64{{1, 2}, {2, 4}}), matrix.ErrSingular},
		{"zero matrix", MustDense(t, 3, 3), matrix.ErrSingular},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inv, err := matrix.Inverse(tc.m)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, inv)
		})
	}
}

func TestInverse_Known2x2(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(FromRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	want := FromRows(t, [][]float64{{0.6, -0.2}, {-0.2, 0.4}})
	CompareClose(t, inv, want, 0, 1e-12)
}

// TestInverse_Known3x3_Adjugate checks A⁻¹ = adj(A)/det(A) for a classic 3×3.
func TestInverse_Known3x3_Adjugate(t *testing.T) {
	t.Parallel()

	A := FromRows(t, [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}) // det = 9
	adj := [][]float64{{13, -11, -5}, {-7, 8, 2}, {3, -6, 3}}
	want := MustDense(t, 3, 3)
	for i := range adj {
		for j := range adj[i] {
			MustSet(t, want, i, j, adj[i][j]/9)
		}
	}

	inv, err := matrix.InverseOf(A)
	require.NoError(t, err)
	CompareClose(t, inv, want, 0, 1e-12)
}

func TestInverse_PermutationAndIdentity(t *testing.T) {
	t.Parallel()

	P := FromRows(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := matrix.Inverse(P)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, inv)

	I := IdentityDense(t, 4)
	inv, err = matrix.Inverse(I)
	require.NoError(t, err)
	CompareClose(t, inv, I, 0, 0)
}

func TestInverse_NoSingularCheck_NonFinite(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(FromRows(t, [][]float64{{1, 2}, {2, 4}}), matrix.WithNoSingularCheck())
	require.NoError(t, err)
	rows, err := matrix.ToRows(inv)
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		found = found || matrix.HasNonFinite(row)
	}
	require.True(t, found, "expected Inf/NaN entries, got\n%v", inv)
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}}
	A := FromRows(t, rows)
	_, err := matrix.Inverse(A)
	require.NoError(t, err)
	CompareExact(t, rows, A)
}

func TestInverse_WrappedInput_MatchesDense(t *testing.T) {
	t.Parallel()

	A := WellConditioned(t, 5, 5)
	fast, err := matrix.Inverse(A)
	require.NoError(t, err)
	slow, err := matrix.Inverse(hide{A})
	require.NoError(t, err)
	CompareClose(t, slow, fast, 0, 0)
}

// A·A⁻¹ ≈ I and A⁻¹·A ≈ I for random non-singular inputs.
func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 8, 25} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			A := WellConditioned(t, n, int64(31*n))
			inv, err := matrix.Inverse(A)
			require.NoError(t, err)

			I := IdentityDense(t, n)
			left, err := matrix.Mul(A, inv)
			require.NoError(t, err)
			CompareClose(t, left, I, rtolKernel, atolKernel)

			right, err := matrix.Mul(inv, A)
			require.NoError(t, err)
			CompareClose(t, right, I, rtolKernel, atolKernel)
		})
	}
}

// solve(A, b) ≈ A⁻¹·b.
func TestInverse_ConsistentWithSolve(t *testing.T) {
	t.Parallel()

	A := WellConditioned(t, 7, 77)
	b := RandomVec(7, 78)

	x, err := matrix.Solve(A, b)
	require.NoError(t, err)
	inv, err := matrix.Inverse(A)
	require.NoError(t, err)
	y, err := matrix.MatVec(inv, b)
	require.NoError(t, err)

	sliceClose(t, x, y, rtolKernel, atolKernel)
}

func TestInverse_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	A := WellConditioned(t, 10, 2024)
	var want mat.Dense
	require.NoError(t, want.Inverse(toGonum(t, A)))

	got, err := matrix.Inverse(A)
	require.NoError(t, err)
	CompareClose(t, got, fromGonum(t, &want), rtolKernel, atolKernel)
}
