// SPDX-License-Identifier: MIT
// Package spblas — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for the common special
//     cases of the three operation contracts.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     façade with fixed coefficients.
//
// Determinism & Policy:
//   - Facades never change the validation order or numeric policy of the
//     underlying operations; they only fix β/α and allocate fresh outputs.

package spblas

import "github.com/katalvlaran/lvlblas/tensor"

// MatVec computes y = mat @ vec into a fresh vector (β = 0, α = 1).
// The β = 0 path guarantees no stale values influence the product.
// Complexity: O(rows + nnz) via AddMV.
func MatVec(mat tensor.Matrix, vec *tensor.Vector, opts ...Option) (*tensor.Vector, error) {
	if mat == nil {
		return nil, opErrorf(opAddMV, ErrNilArgument)
	}
	// A length-1 zero bias broadcasts to any row count.
	bias, err := tensor.NewVector(1, mat.DType())
	if err != nil {
		return nil, opErrorf(opAddMV, err)
	}

	return AddMVNew(bias, mat, vec, tensor.Real(0), tensor.Real(1), opts...)
}

// Sample computes the masked product mask(mat1 @ mat2, pattern(self)) into a
// fresh CSR container (β = 0, α = 1).
// Complexity: as SampledAddMM.
func Sample(self tensor.Matrix, mat1, mat2 tensor.Matrix, opts ...Option) (*tensor.CSR, error) {
	return SampledAddMMNew(self, mat1, mat2, tensor.Real(0), tensor.Real(1), opts...)
}

// SolveLower solves A·X = B for a lower-triangular sparse A into a fresh X.
func SolveLower(B *tensor.Dense, A tensor.Matrix, opts ...Option) (*tensor.Dense, error) {
	return TriangularSolveNew(B, A, false, false, false, opts...)
}

// SolveUpper solves A·X = B for an upper-triangular sparse A into a fresh X.
func SolveUpper(B *tensor.Dense, A tensor.Matrix, opts ...Option) (*tensor.Dense, error) {
	return TriangularSolveNew(B, A, true, false, false, opts...)
}
