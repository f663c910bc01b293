// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support in-place Resize for output containers that are reused across calls.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom/Zero: O(r*c); Resize: O(r*c).

package tensor

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major 2-D container.
//   - r,c hold dimensions (rows, cols); zero-sized shapes are legal so output
//     containers can start empty and be resized by the façades.
//   - dt tags the element type; the flat buffer holds r*c*slots float64 values.
//   - data layout: element (i,j) occupies slot i*c + j (×2 for complex).
type Dense struct {
	r, c int       // number of rows and columns
	dt   DType     // element type tag
	data []float64 // flat backing storage, length == r*c*slots
}

// NewDense creates an r×c Dense container of dtype dt initialized to zeros.
// Stage 1 (Validate): rows and cols must be non-negative.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, dt DType) (*Dense, error) {
	// Validate dimensions (empty shapes allowed, negative rejected).
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Allocate the flat slice; the runtime zero-fills it.
	return &Dense{r: rows, c: cols, dt: dt, data: make([]float64, rows*cols*dt.slots())}, nil
}

// NewDenseOf builds a Float64 Dense from row slices. Intended for fixtures and
// tests; all rows must share one length.
// Complexity: O(r*c).
func NewDenseOf(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, Float64)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseOf: row %d has length %d, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// DType returns the element type tag. Complexity: O(1).
func (m *Dense) DType() DType { return m.dt }

// Layout returns Strided. Complexity: O(1).
func (m *Dense) Layout() Layout { return Strided }

// IsEmpty reports whether the container holds zero elements.
// Freshly allocated output containers typically start as 0×0.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the element index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return the element index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), widened to complex128.
// Real-dtype containers report a zero imaginary part.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return getSlot(m.data, m.dt, idx), nil
}

// Set assigns value v at (row, col).
// A non-zero imaginary part is rejected for Float64 containers (dtype
// mismatch); NaN/Inf values are accepted — numeric policy belongs to the
// operations, not to ingestion.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !m.dt.IsComplex() && imag(v) != 0 {
		return denseErrorf(ctxSet, row, col, ErrDTypeMismatch)
	}
	putSlot(m.data, m.dt, idx, v)

	return nil
}

// Resize reshapes the container in place to rows×cols, reusing the backing
// buffer when capacity suffices. Contents after a shape change are zero;
// callers that need the old values copy them beforehand.
// Stage 1 (Validate): non-negative dimensions.
// Stage 2 (Execute): reuse-or-reallocate, then zero the active region.
// Complexity: O(r*c).
func (m *Dense) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Dense.Resize(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows == m.r && cols == m.c {
		return nil // shape already matches; contents preserved
	}
	need := rows * cols * m.dt.slots()
	if cap(m.data) >= need {
		m.data = m.data[:need]
	} else {
		m.data = make([]float64, need)
	}
	zeroFill(m.data)
	m.r, m.c = rows, cols

	return nil
}

// Zero overwrites every element with an exact zero (explicit fill, not a
// multiply — NaN/Inf contents do not survive). Complexity: O(r*c).
func (m *Dense) Zero() {
	zeroFill(m.data)
}

// RawData returns the flat backing slice, NOT a copy. Element (i,j) occupies
// slot i*Cols()+j for Float64 and the pair (2k, 2k+1) for Complex128. This is
// the kernel-interop surface; mutating it bypasses dtype-domain checks.
func (m *Dense) RawData() []float64 { return m.data }

// CopyFrom copies src's contents into m. Shapes and dtypes must match exactly;
// the receiver is not resized (the caller resolves shape first, keeping the
// mutation step trivially atomic).
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilTensor)
	}
	if m.dt != src.dt {
		return fmt.Errorf("Dense.%s: %s vs %s: %w", ctxCopyFrom, m.dt, src.dt, ErrDTypeMismatch)
	}
	if m.r != src.r || m.c != src.c {
		return fmt.Errorf("Dense.%s: %dx%d vs %dx%d: %w",
			ctxCopyFrom, m.r, m.c, src.r, src.c, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of the container.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, dt: m.dt, data: cp}
}

// Equal reports exact elementwise equality including shape and dtype.
// NaN slots compare as unequal (IEEE semantics); tests that need NaN-aware
// comparison assert slots individually.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c || m.dt != other.dt {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v := getSlot(m.data, m.dt, i*m.c+j)
			if m.dt.IsComplex() {
				fmt.Fprintf(&sb, "%g%+gi", real(v), imag(v))
			} else {
				fmt.Fprintf(&sb, "%g", real(v))
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
