// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a call's configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Pivot tolerance is RELATIVE: a pivot p is rejected when |p| ≤ tol·scale,
//     where scale is the largest absolute coefficient of the input matrix.
//     A zero matrix therefore has scale 0 and every pivot is rejected.
//   - The same threshold decides whether the surplus rows of an overdetermined
//     system are consistent (residual ≤ tol·scale of the augmented matrix).
//   - Disabling the singular check reproduces the legacy contract: the kernels
//     divide by whatever pivot they find and non-finite values propagate into
//     the result instead of an error being returned.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the relative threshold below which a pivot is
	// considered zero. Chosen a few orders of magnitude above float64 epsilon
	// so exact cancellations and rounding residue are both caught.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSingularCheck enables explicit singular-pivot detection (ErrSingular).
	DefaultSingularCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
	singularCheck  bool    // DefaultSingularCheck
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the relative pivot tolerance used for singular and
// inconsistency detection.
//
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol == 0 rejects only exactly-zero pivots (closest to the legacy
//     behavior while still reporting ErrSingular instead of Inf/NaN).
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation of kernel inputs
// and of matrices built by NewDenseFromRows. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite inputs then flow through elimination and usually poison the result.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularCheck enables explicit singular-pivot detection. This is the default.
func WithSingularCheck() Option {
	return func(o *Options) { o.singularCheck = true }
}

// WithNoSingularCheck disables singular-pivot and inconsistency detection.
// Solve and Inverse then divide by the selected pivot even when it is zero and
// return whatever Inf/NaN values result. Callers opting in must inspect the
// output themselves (see HasNonFinite).
func WithNoSingularCheck() Option {
	return func(o *Options) { o.singularCheck = false }
}

// ---------- Resolution ----------

// NewMatrixOptions resolves opts over the documented defaults and returns the
// effective configuration. Useful for callers that want to log or reuse it.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the effective relative pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidatesNaNInf reports whether non-finite inputs are rejected.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// ChecksSingular reports whether singular pivots produce ErrSingular.
func (o Options) ChecksSingular() bool { return o.singularCheck }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		singularCheck:  DefaultSingularCheck,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order (last-writer-wins). nil setters are skipped so
// callers can build option lists conditionally.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
