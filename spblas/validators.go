// SPDX-License-Identifier: MIT
// Package: spblas
//
// Purpose:
//  - Provide a single, canonical source of truth for the contract checks the
//    façades share: nil arguments, layouts, dtypes, multiplication shapes.
//  - Keep façades minimal by delegating guard logic here.
//  - Return sentinels wrapped with the offending argument names and values so
//    call sites only add the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence; validation always
//    completes before the façade mutates any output.

package spblas

import (
	"fmt"

	"github.com/katalvlaran/lvlblas/tensor"
)

// DTyped is the minimal capability validators need for dtype agreement checks.
// Both tensor.Matrix implementations and *tensor.Vector satisfy it.
type DTyped interface {
	DType() tensor.DType
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(name string, m tensor.Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", name, ErrNilArgument)
	}

	return nil
}

// ValidateVectorNotNil ensures the vector reference is non-nil.
// Complexity: O(1).
func ValidateVectorNotNil(name string, v *tensor.Vector) error {
	if v == nil {
		return fmt.Errorf("%s: %w", name, ErrNilArgument)
	}

	return nil
}

// ValidateLayout ensures argument name has the required storage layout.
// The error carries the actual layout observed, per the taxonomy.
// Complexity: O(1).
func ValidateLayout(name string, m tensor.Matrix, want tensor.Layout) error {
	if m.Layout() != want {
		return fmt.Errorf("expected %s to have %s layout, but got %s: %w",
			name, want, m.Layout(), ErrInvalidLayout)
	}

	return nil
}

// ValidateSameDType ensures two cooperating arguments agree on dtype.
// The error carries both names and both types. Assumes non-nil inputs.
// Complexity: O(1).
func ValidateSameDType(aName string, a DTyped, bName string, b DTyped) error {
	if a.DType() != b.DType() {
		return fmt.Errorf("expected %s and %s to have the same dtype, but got %s and %s: %w",
			aName, bName, a.DType(), b.DType(), ErrDTypeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures inner dimensions agree for a @ b.
// The error cites both full shapes, matching BLAS-style diagnostics.
// Assumes non-nil inputs. Complexity: O(1).
func ValidateMulCompatible(aName string, a tensor.Matrix, bName string, b tensor.Matrix) error {
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%s and %s shapes cannot be multiplied (%dx%d and %dx%d): %w",
			aName, bName, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrInvalidShape)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(name string, v *tensor.Vector, n int) error {
	if v.Len() != n {
		return fmt.Errorf("%s has length %d, want %d: %w", name, v.Len(), n, ErrInvalidShape)
	}

	return nil
}

// validateScalars narrows beta and alpha to the element dtype, surfacing a
// dtype mismatch for complex coefficients entering a real computation.
// Runs during validation, before any output mutation.
func validateScalars(beta, alpha tensor.Scalar, dt tensor.DType) (complex128, complex128, error) {
	b, err := beta.Convert(dt)
	if err != nil {
		return 0, 0, fmt.Errorf("beta is %s-domain but operands are %s: %w", beta.Domain(), dt, ErrDTypeMismatch)
	}
	a, err := alpha.Convert(dt)
	if err != nil {
		return 0, 0, fmt.Errorf("alpha is %s-domain but operands are %s: %w", alpha.Domain(), dt, ErrDTypeMismatch)
	}

	return b, a, nil
}
