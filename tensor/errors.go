// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All container operations MUST return these sentinels and tests MUST
// check them via errors.Is. No container operation panics on user-triggered
// error conditions; panics are reserved for programmer errors.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (negative rows/cols/length). Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be non-negative")

	// ErrOutOfRange indicates that an index (row, column or element) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates that a nil container (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil container")

	// ErrDimensionMismatch indicates incompatible dimensions between cooperating
	// containers, e.g. CopyFrom with different shapes or a vector that cannot be
	// broadcast to the requested length.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrDTypeMismatch indicates a dtype disagreement between cooperating
	// containers, or a complex value pushed into a real-domain container.
	// Mixed dtypes are rejected, never silently promoted.
	ErrDTypeMismatch = errors.New("tensor: dtype mismatch")

	// ErrBadStructure signals a malformed compressed-sparse-row skeleton:
	// row-pointer length/monotonicity, column indices out of bounds or not
	// strictly increasing within a row, or a values buffer of the wrong length.
	ErrBadStructure = errors.New("tensor: malformed csr structure")
)
