// SPDX-License-Identifier: MIT

// Package tensor: domain tags shared by every container.
// This file intentionally contains ONLY the closed tag sets (DType, Layout),
// the domain-tagged Scalar coefficient, and the Matrix capability interface.
// Errors live in errors.go per the package conventions.

package tensor

import "fmt"

// DType identifies the element type stored by a container. The set is closed:
// real values are float64, complex values are complex128. Mixed-dtype
// operations are rejected by the façades, never promoted.
type DType uint8

const (
	// Float64 stores one float64 slot per element.
	Float64 DType = iota

	// Complex128 stores two float64 slots per element (re, im interleaved).
	Complex128
)

// IsComplex reports whether the dtype carries an imaginary component.
// Complexity: O(1).
func (d DType) IsComplex() bool { return d == Complex128 }

// slots returns the number of float64 storage slots per element (1 or 2).
// Internal: backing buffers are flat []float64 regardless of dtype.
func (d DType) slots() int {
	if d.IsComplex() {
		return 2
	}

	return 1
}

// String implements fmt.Stringer with BLAS-style dtype names.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
}

// Layout identifies the storage layout of a 2-D container. The set is closed:
// façades branch on these tags (explicit capability check) instead of
// open-ended subtype dispatch.
type Layout uint8

const (
	// Strided is the dense row-major layout (offset = i*cols + j).
	Strided Layout = iota

	// SparseCSR is the compressed-sparse-row layout (rowPtr/colInd/values).
	SparseCSR
)

// String implements fmt.Stringer with the conventional layout names.
func (l Layout) String() string {
	switch l {
	case Strided:
		return "strided"
	case SparseCSR:
		return "sparse_csr"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Matrix is the capability surface shared by the closed set of 2-D containers
// (*Dense and *CSR). Façades accept Matrix and assert the required layout on
// entry; a violated layout precondition is a programming defect, not a
// recoverable condition.
//
// Complexity notes: all methods are O(1).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// DType returns the element type tag.
	DType() DType

	// Layout returns the storage layout tag.
	Layout() Layout
}

// ScalarDomain tags the numeric domain a Scalar was constructed in.
type ScalarDomain uint8

const (
	// RealDomain marks a scalar built from a float64.
	RealDomain ScalarDomain = iota

	// ComplexDomain marks a scalar built from a complex128.
	ComplexDomain
)

// String implements fmt.Stringer.
func (s ScalarDomain) String() string {
	if s == ComplexDomain {
		return "complex"
	}

	return "real"
}

// Scalar is a coefficient (α, β) carrying its actual numeric domain.
// The original BLAS-style dispatch reads every coefficient through a
// complex-valued accessor; here the domain stays explicit and the widening
// happens once, at the container boundary (Convert), so a complex coefficient
// cannot silently leak into a real-dtype computation.
type Scalar struct {
	v      complex128   // value, widened storage
	domain ScalarDomain // domain the scalar was constructed in
}

// Real builds a real-domain scalar.
func Real(v float64) Scalar { return Scalar{v: complex(v, 0), domain: RealDomain} }

// Complex builds a complex-domain scalar.
func Complex(v complex128) Scalar { return Scalar{v: v, domain: ComplexDomain} }

// Domain returns the domain tag the scalar was constructed in.
func (s Scalar) Domain() ScalarDomain { return s.domain }

// AsComplex returns the widened complex128 value. Useful for zero tests that
// must be domain-agnostic (β == 0 is the same condition in both domains).
func (s Scalar) AsComplex() complex128 { return s.v }

// IsZero reports whether the scalar is exactly zero in its widened form.
// NOTE: this is an exact comparison on purpose — the β==0 shortcut of AddMV is
// defined for the literal zero coefficient, not for small values.
func (s Scalar) IsZero() bool { return s.v == 0 }

// Convert narrows the scalar to the element domain of dtype dt.
// A complex-domain scalar with a non-zero imaginary part cannot participate in
// a Float64 computation; that is a dtype mismatch, reported with both sides.
//
// Stage 1 (Validate): imaginary part must be zero for real dtypes.
// Stage 2 (Finalize): return the widened value; real dtypes read only real().
// Complexity: O(1).
func (s Scalar) Convert(dt DType) (complex128, error) {
	if !dt.IsComplex() && imag(s.v) != 0 {
		return 0, fmt.Errorf("scalar domain %s with imaginary part %g into %s: %w",
			s.domain, imag(s.v), dt, ErrDTypeMismatch)
	}

	return s.v, nil
}
