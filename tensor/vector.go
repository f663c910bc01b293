// SPDX-License-Identifier: MIT

// Package tensor - Vector: 1-D dense container with broadcast expansion.
//
// Purpose:
//   - Hold accumulate targets and operands for matrix-vector products.
//   - Offer the same safe accessor surface as Dense (errors, not panics).
//   - Provide BroadcastTo, the length-1 → n expansion the AddMV façade uses
//     for its bias/accumulator argument.

package tensor

import (
	"fmt"
	"strings"
)

// vectorErrorf wraps an error with a uniform Vector context and callsite index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a 1-D dense container.
//   - n holds the logical length; zero length is legal for fresh outputs.
//   - dt tags the element type; data holds n*slots float64 values.
type Vector struct {
	n    int       // logical length
	dt   DType     // element type tag
	data []float64 // flat backing storage, length == n*slots
}

// NewVector creates a zero-initialized vector of length n and dtype dt.
// Stage 1 (Validate): n must be non-negative.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(n).
func NewVector(n int, dt DType) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &Vector{n: n, dt: dt, data: make([]float64, n*dt.slots())}, nil
}

// NewVectorOf builds a Float64 vector from literal values. Intended for
// fixtures and tests. Complexity: O(n).
func NewVectorOf(vals ...float64) *Vector {
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Vector{n: len(vals), dt: Float64, data: data}
}

// Len returns the logical length. Complexity: O(1).
func (v *Vector) Len() int { return v.n }

// DType returns the element type tag. Complexity: O(1).
func (v *Vector) DType() DType { return v.dt }

// At retrieves element i, widened to complex128. Complexity: O(1).
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= v.n {
		return 0, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return getSlot(v.data, v.dt, i), nil
}

// Set assigns value x at index i. A non-zero imaginary part is rejected for
// Float64 vectors; NaN/Inf values are accepted. Complexity: O(1).
func (v *Vector) Set(i int, x complex128) error {
	if i < 0 || i >= v.n {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	if !v.dt.IsComplex() && imag(x) != 0 {
		return vectorErrorf(ctxSet, i, ErrDTypeMismatch)
	}
	putSlot(v.data, v.dt, i, x)

	return nil
}

// Resize reshapes the vector in place to length n, reusing the backing buffer
// when capacity suffices. Contents after a length change are zero.
// Complexity: O(n).
func (v *Vector) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Vector.Resize(%d): %w", n, ErrInvalidDimensions)
	}
	if n == v.n {
		return nil // length already matches; contents preserved
	}
	need := n * v.dt.slots()
	if cap(v.data) >= need {
		v.data = v.data[:need]
	} else {
		v.data = make([]float64, need)
	}
	zeroFill(v.data)
	v.n = n

	return nil
}

// Zero overwrites every element with an exact zero (explicit fill, not a
// multiply — NaN/Inf contents do not survive). Complexity: O(n).
func (v *Vector) Zero() {
	zeroFill(v.data)
}

// RawData returns the flat backing slice, NOT a copy. Element i occupies slot
// i for Float64 and the pair (2i, 2i+1) for Complex128. This is the
// kernel-interop surface; mutating it bypasses dtype-domain checks.
func (v *Vector) RawData() []float64 { return v.data }

// CopyFrom copies src's contents into v. Lengths and dtypes must match; the
// receiver is not resized. Complexity: O(n).
func (v *Vector) CopyFrom(src *Vector) error {
	if src == nil {
		return fmt.Errorf("Vector.%s: %w", ctxCopyFrom, ErrNilTensor)
	}
	if v.dt != src.dt {
		return fmt.Errorf("Vector.%s: %s vs %s: %w", ctxCopyFrom, v.dt, src.dt, ErrDTypeMismatch)
	}
	if v.n != src.n {
		return fmt.Errorf("Vector.%s: %d vs %d: %w", ctxCopyFrom, v.n, src.n, ErrDimensionMismatch)
	}
	copy(v.data, src.data)

	return nil
}

// ScaleFrom writes v := src * beta elementwise. The receiver may alias src
// (the update is slot-local, so in-place scaling is safe). Lengths and dtypes
// must match; beta is narrowed to the container dtype at this boundary.
// Complexity: O(n).
func (v *Vector) ScaleFrom(src *Vector, beta Scalar) error {
	if src == nil {
		return fmt.Errorf("Vector.ScaleFrom: %w", ErrNilTensor)
	}
	if v.dt != src.dt {
		return fmt.Errorf("Vector.ScaleFrom: %s vs %s: %w", v.dt, src.dt, ErrDTypeMismatch)
	}
	if v.n != src.n {
		return fmt.Errorf("Vector.ScaleFrom: %d vs %d: %w", v.n, src.n, ErrDimensionMismatch)
	}
	b, err := beta.Convert(v.dt)
	if err != nil {
		return fmt.Errorf("Vector.ScaleFrom: %w", err)
	}

	// Fast-path: real dtype scales the flat buffer directly.
	if !v.dt.IsComplex() {
		br := real(b)
		for i := range src.data {
			v.data[i] = src.data[i] * br
		}

		return nil
	}

	// Complex path: slot-wise complex multiply.
	for i := 0; i < v.n; i++ {
		putSlot(v.data, v.dt, i, getSlot(src.data, src.dt, i)*b)
	}

	return nil
}

// BroadcastTo expands the vector to length n following the usual broadcast
// rule: an exact-length vector is returned as-is; a length-1 vector expands by
// repetition into a fresh container; anything else is a dimension mismatch.
// The receiver is never mutated.
// Complexity: O(1) for the exact case, O(n) for expansion.
func (v *Vector) BroadcastTo(n int) (*Vector, error) {
	if v.n == n {
		return v, nil
	}
	if v.n != 1 {
		return nil, fmt.Errorf("Vector.BroadcastTo: length %d not expandable to %d: %w",
			v.n, n, ErrDimensionMismatch)
	}
	out := &Vector{n: n, dt: v.dt, data: make([]float64, n*v.dt.slots())}
	x := getSlot(v.data, v.dt, 0)
	for i := 0; i < n; i++ {
		putSlot(out.data, out.dt, i, x)
	}

	return out, nil
}

// Clone returns a deep copy of the vector. Complexity: O(n).
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{n: v.n, dt: v.dt, data: cp}
}

// Equal reports exact elementwise equality including length and dtype.
// NaN slots compare as unequal (IEEE semantics).
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || v.n != other.n || v.dt != other.dt {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging. Complexity: O(n).
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i := 0; i < v.n; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		x := getSlot(v.data, v.dt, i)
		if v.dt.IsComplex() {
			fmt.Fprintf(&sb, "%g%+gi", real(x), imag(x))
		} else {
			fmt.Fprintf(&sb, "%g", real(x))
		}
	}
	sb.WriteString("]")

	return sb.String()
}
