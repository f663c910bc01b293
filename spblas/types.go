// SPDX-License-Identifier: MIT

// Package spblas: façade-level domain types.
// This file intentionally contains ONLY the aliasing mode and the operation
// tags used for unified error wrapping. Errors live in errors.go and the
// kernel strategy interfaces in kernels.go per the package conventions.

package spblas

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAddMV           = "AddMV"
	opTriangularSolve = "TriangularSolve"
	opSampledAddMM    = "SampledAddMM"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMatNotCSR    = "spblas: AddMV: mat must be sparse CSR (precondition)"
	panicSelfNotCSR   = "spblas: SampledAddMM: self must be sparse CSR (precondition)"
	panicANotCSR      = "spblas: TriangularSolve: A must be sparse CSR (precondition)"
	panicClosedSet    = "spblas: matrix outside the closed container set (*Dense, *CSR)"
	panicNilKernel    = "spblas: WithX: kernel must be non-nil"
	panicEpsilonInval = "spblas: WithEpsilon: eps must be finite, non-negative"
)

// AliasMode states whether the output container of a façade call is the same
// container as its accumulate operand. It is resolved exactly once at the top
// of each façade and only the enum is branched on afterwards, keeping the
// ownership story explicit instead of scattering identity comparisons.
type AliasMode uint8

const (
	// FreshOutput: result is a distinct container; the façade resizes it and,
	// when needed, seeds it from the accumulate operand.
	FreshOutput AliasMode = iota

	// InPlace: result aliases the accumulate operand; its existing contents
	// are used directly and no seeding copy occurs.
	InPlace
)

// String implements fmt.Stringer.
func (m AliasMode) String() string {
	switch m {
	case FreshOutput:
		return "fresh-output"
	case InPlace:
		return "in-place"
	default:
		return fmt.Sprintf("aliasmode(%d)", uint8(m))
	}
}

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil to avoid wrapping a nil cause.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
