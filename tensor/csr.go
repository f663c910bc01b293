// SPDX-License-Identifier: MIT

// Package tensor - CSR: compressed-sparse-row matrix.
//
// Purpose:
//   - Store a 2-D matrix as (rowPtr, colInd, values) with column-sorted,
//     de-duplicated entries per row — the structural invariants every kernel
//     and façade in spblas relies on.
//   - Expose exactly the capabilities the operation contracts consume:
//     non-zero count (NNZ), dense materialization (ToDense), pattern masking
//     (Mask) and pattern adoption for output containers (ResizeAsPattern).
//   - Validate the skeleton once, at construction; after NewCSR succeeds the
//     structure is trusted and kernels iterate it without re-checking.
//
// Complexity quicksheet:
//   - NewCSR: O(nnz) validation; At: O(log row-nnz); ToDense: O(r*c);
//     Mask: O(nnz); ResizeAsPattern/CopyFrom/Clone: O(nnz).

package tensor

import (
	"fmt"
	"sort"
)

// csrErrorf wraps an error with a uniform CSR construction context.
func csrErrorf(detail string, err error) error {
	return fmt.Errorf("NewCSR: %s: %w", detail, err)
}

// CSR is a compressed-sparse-row matrix.
//   - rowPtr has length r+1; row i owns entries [rowPtr[i], rowPtr[i+1]).
//   - colInd holds column indices, strictly increasing within each row.
//   - data holds nnz elements (×2 slots for complex dtypes, interleaved).
type CSR struct {
	r, c   int       // number of rows and columns
	dt     DType     // element type tag
	rowPtr []int     // length r+1, monotone non-decreasing, rowPtr[0] == 0
	colInd []int     // length nnz, column-sorted and unique per row
	data   []float64 // length nnz*slots
}

// NewCSR builds a CSR matrix from its three arrays, validating the skeleton.
// The slices are copied; the caller keeps ownership of its arguments.
//
// Stage 1 (Validate): shape, row-pointer monotonicity and bounds, column
// indices in [0, cols) strictly increasing per row, values length.
// Stage 2 (Prepare): copy the three arrays.
// Stage 3 (Finalize): return the container or ErrBadStructure / sentinels.
// Complexity: O(nnz) time and memory.
func NewCSR(rows, cols int, rowPtr, colInd []int, values []float64, dt DType) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSR(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(rowPtr) != rows+1 {
		return nil, csrErrorf(fmt.Sprintf("rowPtr length %d, want %d", len(rowPtr), rows+1), ErrBadStructure)
	}
	if rowPtr[0] != 0 {
		return nil, csrErrorf(fmt.Sprintf("rowPtr[0] = %d, want 0", rowPtr[0]), ErrBadStructure)
	}
	var i, k int // loop iterators (deterministic order)
	for i = 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return nil, csrErrorf(fmt.Sprintf("rowPtr not monotone at row %d", i), ErrBadStructure)
		}
	}
	nnz := rowPtr[rows]
	if len(colInd) != nnz {
		return nil, csrErrorf(fmt.Sprintf("colInd length %d, want %d", len(colInd), nnz), ErrBadStructure)
	}
	if len(values) != nnz*dt.slots() {
		return nil, csrErrorf(fmt.Sprintf("values length %d, want %d", len(values), nnz*dt.slots()), ErrBadStructure)
	}
	for i = 0; i < rows; i++ {
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			if colInd[k] < 0 || colInd[k] >= cols {
				return nil, csrErrorf(fmt.Sprintf("colInd[%d] = %d out of [0,%d)", k, colInd[k], cols), ErrBadStructure)
			}
			if k > rowPtr[i] && colInd[k] <= colInd[k-1] {
				return nil, csrErrorf(fmt.Sprintf("colInd not strictly increasing in row %d", i), ErrBadStructure)
			}
		}
	}

	m := &CSR{
		r:      rows,
		c:      cols,
		dt:     dt,
		rowPtr: make([]int, len(rowPtr)),
		colInd: make([]int, len(colInd)),
		data:   make([]float64, len(values)),
	}
	copy(m.rowPtr, rowPtr)
	copy(m.colInd, colInd)
	copy(m.data, values)

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// DType returns the element type tag. Complexity: O(1).
func (m *CSR) DType() DType { return m.dt }

// Layout returns SparseCSR. Complexity: O(1).
func (m *CSR) Layout() Layout { return SparseCSR }

// NNZ returns the number of stored entries. A matrix with NNZ()==0 is
// mathematically zero, the condition the AddMV shortcut branches on.
// Complexity: O(1).
func (m *CSR) NNZ() int { return m.rowPtr[m.r] }

// RowPtrs returns the backing row-pointer slice, NOT a copy.
// Kernels iterate it directly; treat it as read-only.
func (m *CSR) RowPtrs() []int { return m.rowPtr }

// ColIndices returns the backing column-index slice, NOT a copy.
// Kernels iterate it directly; treat it as read-only.
func (m *CSR) ColIndices() []int { return m.colInd }

// RawValues returns the backing values slice, NOT a copy. Entry k occupies
// slot k for Float64 and the pair (2k, 2k+1) for Complex128. This is the
// kernel-interop surface; treat it as read-only.
func (m *CSR) RawValues() []float64 { return m.data }

// Value returns stored entry k (in [0, NNZ())), widened to complex128.
// Index k addresses the flat entry order, i.e. row-major over the pattern.
// Complexity: O(1).
func (m *CSR) Value(k int) complex128 {
	return getSlot(m.data, m.dt, k)
}

// SetValue overwrites stored entry k. The pattern is immutable; only the
// numeric payload changes. Complexity: O(1).
func (m *CSR) SetValue(k int, v complex128) error {
	if k < 0 || k >= m.NNZ() {
		return fmt.Errorf("CSR.SetValue(%d): %w", k, ErrOutOfRange)
	}
	if !m.dt.IsComplex() && imag(v) != 0 {
		return fmt.Errorf("CSR.SetValue(%d): %w", k, ErrDTypeMismatch)
	}
	putSlot(m.data, m.dt, k, v)

	return nil
}

// At retrieves the element at (row, col); positions outside the stored
// pattern read as zero. Binary search within the row keeps lookups cheap.
// Complexity: O(log row-nnz).
func (m *CSR) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CSR.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], col)
	if k < hi && m.colInd[k] == col {
		return getSlot(m.data, m.dt, k), nil
	}

	return 0, nil
}

// ToDense materializes the matrix as a fresh Dense container: stored entries
// are copied, everything else is exact zero.
// Complexity: O(r*c) memory, O(r*c + nnz) time.
func (m *CSR) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, dt: m.dt, data: make([]float64, m.r*m.c*m.dt.slots())}
	var i, k int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			putSlot(d.data, d.dt, i*m.c+m.colInd[k], getSlot(m.data, m.dt, k))
		}
	}

	return d
}

// Mask samples d at the receiver's sparsity pattern and returns a fresh CSR
// with exactly that pattern. Entries of d outside the pattern are dropped —
// not merely zeroed — so the result's non-zero set always equals the
// receiver's, independent of d's values.
// Stage 1 (Validate): shape and dtype of d must match the receiver.
// Stage 2 (Execute): one pass over the pattern reading d flat.
// Complexity: O(nnz).
func (m *CSR) Mask(d *Dense) (*CSR, error) {
	if d == nil {
		return nil, fmt.Errorf("CSR.Mask: %w", ErrNilTensor)
	}
	if m.dt != d.dt {
		return nil, fmt.Errorf("CSR.Mask: %s vs %s: %w", m.dt, d.dt, ErrDTypeMismatch)
	}
	if m.r != d.r || m.c != d.c {
		return nil, fmt.Errorf("CSR.Mask: %dx%d vs %dx%d: %w", m.r, m.c, d.r, d.c, ErrDimensionMismatch)
	}

	out := m.cloneSkeleton()
	var i, k int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			putSlot(out.data, out.dt, k, getSlot(d.data, d.dt, i*m.c+m.colInd[k]))
		}
	}

	return out, nil
}

// ResizeAsPattern makes the receiver adopt like's shape and sparsity pattern
// with zeroed values. This is the sparse analogue of resizing a dense output
// container before an out-of-place write.
// Complexity: O(nnz).
func (m *CSR) ResizeAsPattern(like *CSR) error {
	if like == nil {
		return fmt.Errorf("CSR.ResizeAsPattern: %w", ErrNilTensor)
	}
	if m.dt != like.dt {
		return fmt.Errorf("CSR.ResizeAsPattern: %s vs %s: %w", m.dt, like.dt, ErrDTypeMismatch)
	}
	if m == like {
		return nil // adopting one's own pattern is a no-op (values kept)
	}
	m.r, m.c = like.r, like.c
	m.rowPtr = append(m.rowPtr[:0], like.rowPtr...)
	m.colInd = append(m.colInd[:0], like.colInd...)
	need := like.NNZ() * m.dt.slots()
	if cap(m.data) >= need {
		m.data = m.data[:need]
	} else {
		m.data = make([]float64, need)
	}
	zeroFill(m.data)

	return nil
}

// CopyFrom copies src's pattern and values into the receiver, reusing buffers
// where possible. Dtypes must match; the shape and pattern are overwritten.
// Complexity: O(nnz).
func (m *CSR) CopyFrom(src *CSR) error {
	if src == nil {
		return fmt.Errorf("CSR.%s: %w", ctxCopyFrom, ErrNilTensor)
	}
	if m.dt != src.dt {
		return fmt.Errorf("CSR.%s: %s vs %s: %w", ctxCopyFrom, m.dt, src.dt, ErrDTypeMismatch)
	}
	if m == src {
		return nil // self-copy is a no-op
	}
	m.r, m.c = src.r, src.c
	m.rowPtr = append(m.rowPtr[:0], src.rowPtr...)
	m.colInd = append(m.colInd[:0], src.colInd...)
	m.data = append(m.data[:0], src.data...)

	return nil
}

// cloneSkeleton copies shape and pattern with zeroed values.
// Internal: skeleton validity is inherited from the receiver.
func (m *CSR) cloneSkeleton() *CSR {
	out := &CSR{
		r:      m.r,
		c:      m.c,
		dt:     m.dt,
		rowPtr: make([]int, len(m.rowPtr)),
		colInd: make([]int, len(m.colInd)),
		data:   make([]float64, len(m.data)),
	}
	copy(out.rowPtr, m.rowPtr)
	copy(out.colInd, m.colInd)

	return out
}

// Clone returns a deep copy of the matrix. Complexity: O(nnz).
func (m *CSR) Clone() *CSR {
	out := m.cloneSkeleton()
	copy(out.data, m.data)

	return out
}

// PatternEqual reports whether two matrices share shape and non-zero
// coordinate set, ignoring values. Used by tests asserting the sampled-product
// pattern invariant. Complexity: O(nnz).
func (m *CSR) PatternEqual(other *CSR) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	if len(m.rowPtr) != len(other.rowPtr) || len(m.colInd) != len(other.colInd) {
		return false
	}
	for i := range m.rowPtr {
		if m.rowPtr[i] != other.rowPtr[i] {
			return false
		}
	}
	for i := range m.colInd {
		if m.colInd[i] != other.colInd[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer; renders as a dense grid for debugging.
// Complexity: O(r*c).
func (m *CSR) String() string {
	return m.ToDense().String()
}
