// SPDX-License-Identifier: MIT

// Package spblas - reference CPU kernels.
//
// Purpose:
//   - Ship default implementations of the kernel strategy interfaces so the
//     façades run end-to-end without an external backend.
//   - Keep algorithmic determinism: fixed loop orders, no map iteration.
//   - Fast-path Float64 operands on the flat backing slices; the generic
//     complex128 path covers Complex128.
//
// Notes:
//   - These kernels favor clarity over throughput (no tiling, no SIMD). They
//     are the reference for the documented rounding behavior: the sampled
//     product must equal the dense computation bit-for-bit, so the dense addmm
//     here IS the definition the masked path is compared against.

package spblas

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lvlblas/tensor"
)

// CPUMatVec is the reference CSR matrix-vector accumulate kernel.
// Zero value is ready to use.
type CPUMatVec struct{}

// Name identifies the kernel in diagnostics.
func (CPUMatVec) Name() string { return "cpu-csr-matvec" }

// AddMV computes out := β·out + α·(mat @ vec) over the stored pattern.
// Shapes and dtypes are pre-validated by the façade; the façade also
// guarantees NNZ() > 0 (the empty shortcut never reaches the kernel).
// For β == 0 the pre-existing out values are overwritten, never read.
// Determinism: rows in order, entries within a row in column order.
// Complexity: O(nnz) time, O(1) extra space.
func (CPUMatVec) AddMV(mat *tensor.CSR, vec *tensor.Vector, beta, alpha tensor.Scalar, out *tensor.Vector) error {
	dt := mat.DType()
	b, a, err := validateScalars(beta, alpha, dt)
	if err != nil {
		return err
	}
	rowPtr, colInd := mat.RowPtrs(), mat.ColIndices()
	rows := mat.Rows()

	// Fast-path: real dtype walks the flat buffers directly.
	if !dt.IsComplex() {
		br, ar := real(b), real(a)
		vals, x, y := mat.RawValues(), vec.RawData(), out.RawData()
		var i, k int // loop iterators (deterministic order)
		var acc float64
		for i = 0; i < rows; i++ {
			acc = 0 // reset accumulator per row
			for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
				acc += vals[k] * x[colInd[k]] // accumulate a(i,j)*x(j)
			}
			if br == 0 {
				y[i] = ar * acc // overwrite: stale NaN/Inf must not survive
			} else {
				y[i] = br*y[i] + ar*acc
			}
		}

		return nil
	}

	// Complex path: slot-wise complex accumulate.
	var i, k int
	var acc, prev complex128
	for i = 0; i < rows; i++ {
		acc = 0
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			xv, atErr := vec.At(colInd[k])
			if atErr != nil {
				return opErrorf(opAddMV, atErr)
			}
			acc += mat.Value(k) * xv
		}
		if b == 0 {
			err = out.Set(i, a*acc)
		} else {
			if prev, err = out.At(i); err != nil {
				return opErrorf(opAddMV, err)
			}
			err = out.Set(i, b*prev+a*acc)
		}
		if err != nil {
			return opErrorf(opAddMV, err)
		}
	}

	return nil
}

// CPUTriangularSolver is the reference CSR triangular substitution kernel.
// Eps is the pivot tolerance: a diagonal with magnitude <= Eps counts as zero.
// The zero value detects exact-zero pivots only.
type CPUTriangularSolver struct {
	Eps float64
}

// Name identifies the solver in diagnostics.
func (CPUTriangularSolver) Name() string { return "cpu-csr-trsv" }

// Solve computes X such that op(A)·X = B by row-oriented substitution.
//
// Stage 1 (Validate): A square, B rows == A rows, dtypes agree; then, unless
// unitriangular, every diagonal pivot is checked BEFORE any write to X, so a
// singular matrix never leaves a partially-written solution behind.
// Stage 2 (Prepare): resize X to B's shape.
// Stage 3 (Execute): per right-hand-side column, forward or backward
// substitution; the transpose modes run the column-sweep variant so A is still
// consumed row-by-row. Entries in the inactive triangle are ignored.
// Complexity: O(nrhs · (nnz + m)) time, O(m) scratch per column.
func (s CPUTriangularSolver) Solve(A *tensor.CSR, B, X *tensor.Dense, upper, transpose, unitriangular bool) error {
	if A == nil || B == nil || X == nil {
		return opErrorf(opTriangularSolve, ErrNilArgument)
	}
	m := A.Rows()
	if A.Cols() != m {
		return fmt.Errorf("%s: A is %dx%d, want square: %w", opTriangularSolve, A.Rows(), A.Cols(), ErrInvalidShape)
	}
	if B.Rows() != m {
		return fmt.Errorf("%s: B has %d rows, want %d: %w", opTriangularSolve, B.Rows(), m, ErrInvalidShape)
	}
	dt := A.DType()
	if err := ValidateSameDType("A", A, "B", B); err != nil {
		return opErrorf(opTriangularSolve, err)
	}
	if err := ValidateSameDType("A", A, "X", X); err != nil {
		return opErrorf(opTriangularSolve, err)
	}

	// Pivot scan precedes every write: atomicity on the failure path.
	diag := make([]complex128, m)
	if unitriangular {
		for i := range diag {
			diag[i] = 1 // stored diagonal values are ignored by contract
		}
	} else {
		for i := 0; i < m; i++ {
			d, _ := A.At(i, i) // in-range by construction
			if cmplx.Abs(d) <= s.Eps {
				return fmt.Errorf("%s: zero pivot at row %d: %w", opTriangularSolve, i, ErrSingular)
			}
			diag[i] = d
		}
	}

	nrhs := B.Cols()
	if err := X.Resize(m, nrhs); err != nil {
		return opErrorf(opTriangularSolve, err)
	}

	rowPtr, colInd := A.RowPtrs(), A.ColIndices()
	x := make([]complex128, m) // scratch column, complex-widened
	var i, j, k, col int       // loop iterators (deterministic order)
	for j = 0; j < nrhs; j++ {
		// Load column j of B.
		for i = 0; i < m; i++ {
			v, err := B.At(i, j)
			if err != nil {
				return opErrorf(opTriangularSolve, err)
			}
			x[i] = v
		}

		switch {
		case !transpose && !upper:
			// Forward substitution on the lower triangle.
			for i = 0; i < m; i++ {
				for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
					if col = colInd[k]; col < i {
						x[i] -= A.Value(k) * x[col]
					}
				}
				if !unitriangular {
					x[i] /= diag[i]
				}
			}
		case !transpose && upper:
			// Backward substitution on the upper triangle.
			for i = m - 1; i >= 0; i-- {
				for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
					if col = colInd[k]; col > i {
						x[i] -= A.Value(k) * x[col]
					}
				}
				if !unitriangular {
					x[i] /= diag[i]
				}
			}
		case transpose && upper:
			// Aᵀ with the upper triangle active is lower triangular:
			// column-sweep forward substitution, consuming A by rows.
			for i = 0; i < m; i++ {
				if !unitriangular {
					x[i] /= diag[i]
				}
				for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
					if col = colInd[k]; col > i {
						x[col] -= A.Value(k) * x[i]
					}
				}
			}
		default: // transpose && !upper
			// Aᵀ with the lower triangle active is upper triangular:
			// column-sweep backward substitution.
			for i = m - 1; i >= 0; i-- {
				if !unitriangular {
					x[i] /= diag[i]
				}
				for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
					if col = colInd[k]; col < i {
						x[col] -= A.Value(k) * x[i]
					}
				}
			}
		}

		// Store column j of X, narrowing to the element domain.
		for i = 0; i < m; i++ {
			v := x[i]
			if !dt.IsComplex() {
				// Real operands: the true imaginary part is zero; drop the
				// 0·NaN artifacts of widened arithmetic.
				v = complex(real(v), 0)
			}
			if err := X.Set(i, j, v); err != nil {
				return opErrorf(opTriangularSolve, err)
			}
		}
	}

	return nil
}

// CPUMatMul is the reference dense addmm kernel.
// Zero value is ready to use.
type CPUMatMul struct{}

// Name identifies the kernel in diagnostics.
func (CPUMatMul) Name() string { return "cpu-dense-addmm" }

// AddMM returns β·self + α·(mat1 @ mat2) as a fresh Dense.
// Shapes and dtypes are pre-validated by the caller. For β == 0 self's values
// are never read, so NaN/Inf in self cannot leak into the product.
// Determinism: fixed i→k→j order on the fast path, i→j→k on the generic path.
// Complexity: O(m·k·n) time, O(m·n) result memory.
func (CPUMatMul) AddMM(self, mat1, mat2 *tensor.Dense, beta, alpha tensor.Scalar) (*tensor.Dense, error) {
	dt := mat1.DType()
	b, a, err := validateScalars(beta, alpha, dt)
	if err != nil {
		return nil, err
	}
	mRows, inner, nCols := mat1.Rows(), mat1.Cols(), mat2.Cols()
	res, err := tensor.NewDense(mRows, nCols, dt)
	if err != nil {
		return nil, err
	}

	// Fast-path: real dtype multiplies the flat buffers directly (i→k→j).
	if !dt.IsComplex() {
		br, ar := real(b), real(a)
		d1, d2, ds, dr := mat1.RawData(), mat2.RawData(), self.RawData(), res.RawData()
		var i, j, k int // loop iterators (deterministic order)
		var av float64
		var rowOffset1, rowOffset2, rowOffsetR int
		for i = 0; i < mRows; i++ {
			rowOffset1 = i * inner
			rowOffsetR = i * nCols
			for k = 0; k < inner; k++ {
				av = d1[rowOffset1+k]
				if av == 0 {
					continue // skip zero for performance
				}
				rowOffset2 = k * nCols
				for j = 0; j < nCols; j++ {
					dr[rowOffsetR+j] += av * d2[rowOffset2+j]
				}
			}
		}
		for i = range dr {
			if br == 0 {
				dr[i] *= ar // self is not read: β==0 suppresses its NaN/Inf
			} else {
				dr[i] = ar*dr[i] + br*ds[i]
			}
		}

		return res, nil
	}

	// Generic complex path via safe accessors (i→j→k).
	var i, j, k int
	var sum, sv complex128
	for i = 0; i < mRows; i++ {
		for j = 0; j < nCols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				v1, e1 := mat1.At(i, k)
				if e1 != nil {
					return nil, e1
				}
				v2, e2 := mat2.At(k, j)
				if e2 != nil {
					return nil, e2
				}
				sum += v1 * v2
			}
			sum *= a
			if b != 0 {
				if sv, err = self.At(i, j); err != nil {
					return nil, err
				}
				sum += b * sv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}
