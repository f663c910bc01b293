// SPDX-License-Identifier: MIT
// Package tensor — public API facades.
//
// Purpose:
//   - Provide thin, well-documented constructors for common container shapes.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     constructor and inherits its validation.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.

package tensor

import "math"

// ---------- Constructors & Utilities ----------

// NewZeros returns a zero-initialized rows×cols Dense of dtype dt.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int, dt DType) (*Dense, error) {
	return NewDense(rows, cols, dt)
}

// ZerosLike returns a fresh zero Dense with m's shape and dtype.
// Handy to preallocate staging buffers. Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols(), m.DType())
}

// Identity returns the n×n identity in CSR form (one stored entry per row).
// Determinism: fixed i-loop; pattern is the main diagonal.
// Complexity: O(n).
func Identity(n int, dt DType) (*CSR, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	rowPtr := make([]int, n+1)
	colInd := make([]int, n)
	values := make([]float64, n*dt.slots())
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		rowPtr[i+1] = i + 1
		colInd[i] = i
		values[i*dt.slots()] = 1.0 // real part; imaginary slot (if any) stays 0
	}

	return NewCSR(n, n, rowPtr, colInd, values, dt)
}

// NewCSRFromDense compresses d, keeping entries with magnitude strictly above
// eps. Pass eps = 0 to keep every non-zero entry exactly.
// Stage 1 (Validate): d non-nil, eps finite and non-negative.
// Stage 2 (Execute): two-pass scan — count per row, then fill.
// Complexity: O(r*c) time, O(nnz) result memory.
func NewCSRFromDense(d *Dense, eps float64) (*CSR, error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	if math.IsNaN(eps) || eps < 0 {
		return nil, ErrInvalidDimensions
	}

	keep := func(v complex128) bool {
		if d.dt.IsComplex() {
			return math.Hypot(real(v), imag(v)) > eps || (eps == 0 && v != 0)
		}
		return math.Abs(real(v)) > eps || (eps == 0 && real(v) != 0)
	}

	rowPtr := make([]int, d.r+1)
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < d.r; i++ {
		rowPtr[i+1] = rowPtr[i]
		for j = 0; j < d.c; j++ {
			if keep(getSlot(d.data, d.dt, i*d.c+j)) {
				rowPtr[i+1]++
			}
		}
	}
	nnz := rowPtr[d.r]
	colInd := make([]int, 0, nnz)
	values := make([]float64, 0, nnz*d.dt.slots())
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			v := getSlot(d.data, d.dt, i*d.c+j)
			if !keep(v) {
				continue
			}
			colInd = append(colInd, j)
			values = append(values, real(v))
			if d.dt.IsComplex() {
				values = append(values, imag(v))
			}
		}
	}

	return NewCSR(d.r, d.c, rowPtr, colInd, values, d.dt)
}

// EmptyCSR returns a 0×0 CSR output container of dtype dt, the conventional
// starting state for out-of-place sampled products.
// Complexity: O(1).
func EmptyCSR(dt DType) *CSR {
	return &CSR{r: 0, c: 0, dt: dt, rowPtr: []int{0}}
}
