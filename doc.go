// Package lvlblas is a contract layer for sparse-matrix BLAS-like operations —
// strict validation, explicit aliasing semantics and kernel dispatch above
// opaque numeric backends.
//
// 🚀 What is lvlblas?
//
//	A deterministic, dependency-light library that brings together:
//		• Containers: dense matrices/vectors and compressed-sparse-row matrices,
//		  tagged with layout and dtype (float64 and complex128)
//		• AddMV: sparse matrix × vector accumulate, y := β·y + α·(A @ x),
//		  with the empty-matrix shortcut and β==0 NaN/Inf suppression
//		• TriangularSolve: sparse triangular op(A)·X = B with upper/lower,
//		  transpose and unit-diagonal modes
//		• SampledAddMM: masked dense product α·(A @ B) ⊙ spy(C) + β·C, where
//		  the result keeps exactly C's sparsity pattern
//		• Pluggable kernels: reference CPU backends injected via options, so
//		  the contract layer stays independently testable
//
// ✨ Why choose lvlblas?
//
//   - BLAS-faithful contracts – validation before any output mutation
//   - Rock-solid guarantees – sentinel errors, errors.Is-friendly wrapping
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap in your own MatVecKernel / TriangularSolver backends
//
// Under the hood, everything is organized under two subpackages:
//
//	tensor/ — layout-tagged containers (Dense, Vector, CSR), dtypes, scalars
//	spblas/ — the operation façades, validators, options and CPU kernels
//
// Quick sketch of the central contract (AddMV):
//
//	result := β·self + α·(mat @ vec)
//
//	where mat is sparse CSR, vec/self/result are dense vectors, and an
//	all-zero mat degenerates to result := β·self (exactly zero when β==0,
//	regardless of NaN/Inf in self).
//
// Dive into DESIGN.md for the full operation contracts and error taxonomy.
//
//	go get github.com/katalvlaran/lvlblas
package lvlblas
