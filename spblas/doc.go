// Package spblas implements the dispatch and validation layer for
// sparse-matrix BLAS-like operations.
//
// The spblas package provides three operation façades composing one pattern —
// validate → shortcut-or-delegate → write result:
//
//   - AddMV — sparse matrix × vector accumulate, result := β·self + α·(mat @ vec),
//     with an empty-matrix shortcut that suppresses NaN/Inf when β == 0.
//   - TriangularSolve — sparse triangular solve op(A)·X = B, a thin normalizing
//     wrapper over a pluggable backend solver.
//   - SampledAddMM — masked dense product α·(mat1 @ mat2) + β·self sampled at
//     self's sparsity pattern; the result's non-zero set always equals self's.
//
// The hard part is the contract, not the arithmetic: every façade validates
// shapes, layouts and dtypes BEFORE any output mutation (atomic failure path),
// resolves output aliasing once into an explicit AliasMode, and delegates the
// numeric work to injected kernel strategies. Reference CPU kernels ship as
// defaults so the façades run end-to-end; production backends replace them via
// functional options (WithMatVecKernel, WithTriangularSolver, WithMatMulKernel).
//
// Error taxonomy (all matched via errors.Is):
//
//   - ErrInvalidShape — dimensionality/shape mismatch, reported with the
//     offending dimensions.
//   - ErrInvalidLayout — wrong storage layout for an argument, reported with
//     the actual layout.
//   - ErrDTypeMismatch — dtype disagreement between cooperating arguments,
//     reported with both types.
//   - ErrSingular / ErrNumerical — backend numeric failures, propagated
//     unchanged.
//
// Precondition violations (e.g. passing a dense matrix where the sparse entry
// point is asserted) are programming defects and panic; they are not part of
// the recoverable error surface.
//
// Concurrency: façades take no locks. Distinct calls on disjoint output
// containers are safe in parallel; concurrent writers to one output are a
// data race by contract.
package spblas
