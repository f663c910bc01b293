// SPDX-License-Identifier: MIT

// Package spblas: backend kernel strategy interfaces.
//
// Purpose:
//   - Model the opaque numeric backends as injected strategies so the façade
//     logic is independently testable with fake kernels.
//   - Declare the exact signatures the façades delegate to; the division of
//     labor (who applies β, who resizes what) is part of each contract below.
//
// Notes:
//   - Kernels may parallelize internally (e.g. across rows) but must complete
//     synchronously before returning; that parallelism is opaque to façades.
//   - Reference CPU implementations live in kernels_cpu.go.

package spblas

import "github.com/katalvlaran/lvlblas/tensor"

// MatVecKernel computes the accumulate product out := β·out + α·(mat @ vec).
//
// Contract:
//   - mat is CSR with NNZ() > 0 (the façade handles the empty shortcut),
//     vec has length mat.Cols(), out has length mat.Rows(); dtypes agree.
//   - The kernel owns the full accumulate semantics including the β scaling of
//     out's pre-existing contents; for β == 0 it must overwrite, not read, out
//     (NaN/Inf in out must not propagate).
//   - On error, out's contents are not a valid result.
type MatVecKernel interface {
	AddMV(mat *tensor.CSR, vec *tensor.Vector, beta, alpha tensor.Scalar, out *tensor.Vector) error
}

// TriangularSolver solves op(A)·X = B for a square sparse triangular A.
//
// Contract:
//   - upper selects the active triangle; stored entries in the complementary
//     triangle are ignored by convention, not validated.
//   - transpose selects op(A) = Aᵀ; unitriangular treats the diagonal as
//     all-ones regardless of stored values.
//   - The solver validates shapes, resizes X to B's shape, and reports a zero
//     (or negligible, under its tolerance) pivot as ErrSingular. On error, X's
//     contents are not a valid result.
type TriangularSolver interface {
	Solve(A *tensor.CSR, B, X *tensor.Dense, upper, transpose, unitriangular bool) error
}

// MatMulKernel is the generic dense addmm primitive: return β·self + α·(mat1 @ mat2)
// as a fresh Dense.
//
// Contract:
//   - Shapes and dtypes are pre-validated by the caller; self is m×n,
//     mat1 m×k, mat2 k×n.
//   - For β == 0 the kernel must not read self's values (NaN/Inf suppression).
type MatMulKernel interface {
	AddMM(self, mat1, mat2 *tensor.Dense, beta, alpha tensor.Scalar) (*tensor.Dense, error)
}

// KernelSet bundles one strategy per concern. DefaultKernels reports the set a
// façade call uses when no WithX option overrides it.
type KernelSet struct {
	MatVec MatVecKernel
	Solver TriangularSolver
	MatMul MatMulKernel
}

// DefaultKernels returns the reference CPU kernel set with the default
// tolerance. Diagnostic tooling prints these names; options replace members
// per call. Complexity: O(1).
func DefaultKernels() KernelSet {
	return KernelSet{
		MatVec: CPUMatVec{},
		Solver: CPUTriangularSolver{Eps: DefaultEpsilon},
		MatMul: CPUMatMul{},
	}
}
