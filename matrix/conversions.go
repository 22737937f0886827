// SPDX-License-Identifier: MIT

// Package matrix - conversions between plain row slices ([][]float64) and Dense.
//
// Purpose:
//   - Let callers that hold row-major [][]float64 data (forms, JSON payloads)
//     enter and leave the Matrix world without touching At/Set.
//   - Copy on the way in and on the way out: a Dense never aliases caller rows.
package matrix

import "fmt"

// NewDenseFromRows builds an independent r×c Dense from row-major data.
//
// Implementation:
//   - Stage 1: require at least one row and one column (ErrInvalidDimensions).
//   - Stage 2: require every row to have the same length as rows[0] (ErrDimensionMismatch).
//   - Stage 3: when the NaN/Inf policy is on, reject non-finite values (ErrNaNInf).
//   - Stage 4: copy rows into the flat buffer.
//
// Options:
//   - WithNoValidateNaNInf() admits non-finite values and disables the Set guard
//     on the returned matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])

	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		if o.validateNaNInf {
			for j = 0; j < c; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, fmt.Errorf("NewDenseFromRows(%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
		copy(m.rowSlice(i), rows[i]) // row-major: row i occupies data[i*c:(i+1)*c]
	}

	return m, nil
}

// ToRows returns the matrix contents as freshly allocated rows.
// An empty (0×0) Dense yields a non-nil empty slice.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.rowSlice(i))
	}

	return out
}

// ToRows converts any Matrix into freshly allocated rows.
// *Dense takes the flat copy path; other implementations are read through At.
// Errors: ErrNilMatrix, or At errors from a misbehaving implementation.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToRows: %w", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.ToRows(), nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	out := make([][]float64, m.Rows())
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToRows: %w", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// HasNonFinite reports whether any value in x is NaN or ±Inf.
// Intended for callers running kernels under WithNoSingularCheck.
func HasNonFinite(x []float64) bool {
	for _, v := range x {
		if isNonFinite(v) {
			return true
		}
	}

	return false
}
