// SPDX-License-Identifier: MIT
// Package spblas: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the spblas
// package. All façades MUST return these sentinels and tests MUST check them
// via errors.Is. No façade panics on user-triggered error conditions; panics
// are reserved for violated entry preconditions (programmer errors).

package spblas

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spblas: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: ctx: %w", ErrX)
// at the façade — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> layout -> dtype -> shape/dimension -> backend numeric.
// Validation always completes BEFORE any output mutation.

var (
	// ErrNilArgument indicates that a nil container was passed to a façade.
	ErrNilArgument = errors.New("spblas: nil argument")

	// ErrInvalidShape indicates a dimensionality or shape incompatibility
	// between operands (vector length vs matrix columns, inner dimensions,
	// outer dimensions vs the sampled pattern). Messages carry the concrete
	// dimensions involved.
	ErrInvalidShape = errors.New("spblas: invalid shape")

	// ErrInvalidLayout indicates the wrong storage layout for an argument
	// (dense where sparse is required, or vice versa). Messages carry the
	// argument name and its actual layout.
	ErrInvalidLayout = errors.New("spblas: invalid layout")

	// ErrDTypeMismatch indicates a dtype disagreement between cooperating
	// arguments. Mixed-precision inputs are rejected, never promoted.
	// Messages carry both types.
	ErrDTypeMismatch = errors.New("spblas: dtype mismatch")

	// ErrSingular is returned by triangular solvers on a zero (or, under the
	// configured tolerance, negligible) diagonal entry. Not locally
	// recoverable; propagated to the caller unchanged.
	ErrSingular = errors.New("spblas: singular triangular matrix")

	// ErrNumerical marks any other backend numeric failure. Façades propagate
	// it without retrying; the output contents are not a valid result.
	ErrNumerical = errors.New("spblas: numerical error in backend kernel")
)
