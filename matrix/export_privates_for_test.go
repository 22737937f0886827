// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED pivoting helpers and internal options to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid
)

// SelectPivot_TestOnly returns the pivot row chosen for column col of m,
// scanning rows col..Rows()-1.
func SelectPivot_TestOnly(m Matrix, col int) (int, error) {
	aug, err := augment(m, 0)
	if err != nil {
		return 0, err
	}

	return selectPivot(aug, col, col), nil
}

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	PivotTolerance float64
	ValidateNaNInf bool
	SingularCheck  bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		PivotTolerance: o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
		SingularCheck:  o.singularCheck,
	}
}
