// SPDX-License-Identifier: MIT

// Package spblas: functional configuration for the operation façades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Kernel strategies default to the reference CPU set (DefaultKernels).
//   - WithEpsilon configures the DEFAULT triangular solver's pivot tolerance;
//     it has no effect once WithTriangularSolver installs a custom backend,
//     because tolerance policy then belongs to that backend.

package spblas

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot tolerance of the reference triangular solver.
	// Zero means only an exactly-zero diagonal entry is singular; positive
	// values also reject negligible pivots.
	DefaultEpsilon = 0.0
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; façades resolve them
// internally via gatherOptions.
type Options struct {
	matVec    MatVecKernel     // nil ⇒ CPUMatVec
	triSolver TriangularSolver // nil ⇒ CPUTriangularSolver{Eps: eps}
	matMul    MatMulKernel     // nil ⇒ CPUMatMul
	eps       float64          // pivot tolerance for the default solver
}

// WithMatVecKernel installs the sparse matrix-vector backend for this call.
func WithMatVecKernel(k MatVecKernel) Option {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *Options) { o.matVec = k }
}

// WithTriangularSolver installs the sparse triangular solve backend for this call.
func WithTriangularSolver(s TriangularSolver) Option {
	if s == nil {
		panic(panicNilKernel)
	}

	return func(o *Options) { o.triSolver = s }
}

// WithMatMulKernel installs the dense addmm backend for this call.
func WithMatMulKernel(k MatMulKernel) Option {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *Options) { o.matMul = k }
}

// WithEpsilon sets the pivot tolerance of the default triangular solver.
// eps must be finite and non-negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInval)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the documented defaults and fills in the
// reference kernels for any strategy left unset.
// Determinism: options apply in argument order; last writer wins.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if o.matVec == nil {
		o.matVec = CPUMatVec{}
	}
	if o.triSolver == nil {
		o.triSolver = CPUTriangularSolver{Eps: o.eps}
	}
	if o.matMul == nil {
		o.matMul = CPUMatMul{}
	}

	return o
}
