// SPDX-License-Identifier: MIT

// Package spblas - TriangularSolve: sparse triangular solve façade.

package spblas

import (
	"github.com/katalvlaran/lvlblas/tensor"
)

// TriangularSolve solves op(A)·X = B where A is a square sparse triangular
// matrix (m×m) and B is dense (m×nrhs), writing the solution into X.
//
// Flags:
//   - upper selects whether the upper or lower triangle of A is the active
//     operand; stored values in the complementary triangle are ignored by
//     convention, not validated.
//   - transpose selects op(A) = Aᵀ.
//   - unitriangular treats A's diagonal as implicitly all-ones, regardless of
//     the stored diagonal values.
//
// This façade is a thin normalizing wrapper: it asserts the sparse-layout
// precondition (a dense A here is a programming defect and panics), reorders
// the arguments for the backend solver, and propagates backend failures
// unchanged. Shape validation, the resize of X and singularity detection
// (ErrSingular on a zero — or, under the solver's tolerance, negligible —
// pivot) belong to the backend. On error, X's contents are not a valid
// solution.
//
// The strided-layout solve signature also returns a cloned A for interface
// compatibility; this layer does not unify the two signatures, so no clone is
// produced here.
// Complexity: delegated to the backend solver.
func TriangularSolve(B *tensor.Dense, A tensor.Matrix, upper, transpose, unitriangular bool, X *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	o := gatherOptions(opts...)

	if err := ValidateNotNil("A", A); err != nil {
		return nil, opErrorf(opTriangularSolve, err)
	}
	csr, ok := A.(*tensor.CSR)
	if !ok || A.Layout() != tensor.SparseCSR {
		panic(panicANotCSR)
	}

	if err := o.triSolver.Solve(csr, B, X, upper, transpose, unitriangular); err != nil {
		return nil, err // backend errors pass through unchanged
	}

	return X, nil
}

// TriangularSolveNew is the out-of-place convenience variant: it allocates a
// fresh X of A's dtype and delegates to TriangularSolve.
func TriangularSolveNew(B *tensor.Dense, A tensor.Matrix, upper, transpose, unitriangular bool, opts ...Option) (*tensor.Dense, error) {
	if A == nil {
		return nil, opErrorf(opTriangularSolve, ErrNilArgument)
	}
	X, err := tensor.NewDense(0, 0, A.DType())
	if err != nil {
		return nil, opErrorf(opTriangularSolve, err)
	}

	return TriangularSolve(B, A, upper, transpose, unitriangular, X, opts...)
}
